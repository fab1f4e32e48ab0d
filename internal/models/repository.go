package models

// Star is a repository starred by the account
type Star struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
}

// Repository is a repository owned by the account. Commits is only set for
// featured repositories.
type Repository struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url"`
	Stars       int              `json:"stars"`
	Forks       int              `json:"forks"`
	Language    string           `json:"language"`
	Topics      []string         `json:"topics"`
	Owner       string           `json:"owner"`
	Private     bool             `json:"private"`
	Fork        bool             `json:"fork"`
	UpdatedAt   string           `json:"updatedAt"`
	PushedAt    string           `json:"pushedAt"`
	Commits     []FeaturedCommit `json:"commits,omitempty"`
}

// RepoActivity is an event by someone else on a repository of the account
type RepoActivity struct {
	Type        string `json:"type"`
	Actor       string `json:"actor"`
	ActorURL    string `json:"actorUrl"`
	ActorAvatar string `json:"actorAvatar"`
	Repo        string `json:"repo"`
	RepoURL     string `json:"repoUrl"`
	Date        string `json:"date"`
	Detail      string `json:"detail"`
}

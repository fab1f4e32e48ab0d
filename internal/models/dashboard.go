package models

// Profile is the account summary shown on the dashboard
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	URL         string `json:"url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// Dashboard is the composite result of every category for one account
type Dashboard struct {
	User          Profile        `json:"user"`
	Commits       []Commit       `json:"commits"`
	Contributions []Contribution `json:"contributions"`
	Stars         []Star         `json:"stars"`
	Repositories  []Repository   `json:"repositories"`
	Featured      []Repository   `json:"featured"`
}

// Snapshot sources
const (
	SourceProxy  = "proxy"
	SourceGitHub = "github"
)

// Snapshot is the category data consumed by the site generator
type Snapshot struct {
	Stars         []Star         `json:"stars"`
	Commits       []Commit       `json:"commits"`
	Contributions []Contribution `json:"contributions"`
	Activity      []RepoActivity `json:"activity"`
	Featured      []Repository   `json:"featured"`
	Source        string         `json:"source"`
}

// NewSnapshot returns a snapshot with every category empty
func NewSnapshot(source string) Snapshot {
	return Snapshot{
		Stars:         []Star{},
		Commits:       []Commit{},
		Contributions: []Contribution{},
		Activity:      []RepoActivity{},
		Featured:      []Repository{},
		Source:        source,
	}
}

// IsEmpty reports whether no category holds any record
func (s Snapshot) IsEmpty() bool {
	return len(s.Stars) == 0 && len(s.Commits) == 0 && len(s.Contributions) == 0 &&
		len(s.Activity) == 0 && len(s.Featured) == 0
}

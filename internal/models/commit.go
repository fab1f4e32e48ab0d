package models

// Commit is a commit pushed by the account, taken from a push event
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Repo    string `json:"repo"`
	RepoURL string `json:"repoUrl"`
	Date    string `json:"date"`
}

// FeaturedCommit is a recent commit of a featured repository
type FeaturedCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// Contribution types
const (
	ContributionPR    = "pr"
	ContributionIssue = "issue"
)

// Contribution is a pull request or issue opened by the account
type Contribution struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Repo    string `json:"repo"`
	RepoURL string `json:"repoUrl"`
	Number  int    `json:"number"`
	Date    string `json:"date"`
}

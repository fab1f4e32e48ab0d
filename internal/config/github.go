package config

import (
	"time"

	"github.com/Kamar-Folarin/github-activity/internal/utils"
)

const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultCacheTTL   = 900_000 // milliseconds
)

// GitHubConfig holds GitHub-specific configuration
type GitHubConfig struct {
	Username   string `env:"USERNAME"`
	Token      string `env:"TOKEN"`
	APIBaseURL string `env:"API_BASE_URL" envDefault:"https://api.github.com"`
	// CacheTTLMillis is the fetch cache time-to-live in milliseconds
	CacheTTLMillis int `env:"CACHE_TTL" envDefault:"900000"`
	// Repos scopes received activity to these owner/repo entries. Empty means
	// the account's received events are used instead.
	Repos         []string `env:"REPOS" envSeparator:","`
	FeaturedRepos []string `env:"FEATURED_REPOS" envSeparator:","`
	// ProxyURL is the mount URL of a service exposing precomputed categories
	// under /api/{category}
	ProxyURL string `env:"PROXY_URL"`
	// Concurrency caps the repositories fetched at once for featured and
	// allow-listed activity. Zero means no cap.
	Concurrency int `env:"CONCURRENCY" envDefault:"0"`
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL:     DefaultAPIBaseURL,
		CacheTTLMillis: DefaultCacheTTL,
	}
}

// CacheTTL returns the cache time-to-live as a duration
func (c *GitHubConfig) CacheTTL() time.Duration {
	if c.CacheTTLMillis <= 0 {
		return DefaultCacheTTL * time.Millisecond
	}
	return time.Duration(c.CacheTTLMillis) * time.Millisecond
}

// HasToken reports whether requests are credentialed
func (c *GitHubConfig) HasToken() bool {
	return c.Token != ""
}

func (c *GitHubConfig) normalize() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	c.Repos = utils.ParseRepoList(c.Repos)
	c.FeaturedRepos = utils.ParseRepoList(c.FeaturedRepos)
}

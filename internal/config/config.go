package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment
type Config struct {
	Port      string       `env:"PORT" envDefault:"8080"`
	MountPath string       `env:"MOUNT_PATH" envDefault:"/github"`
	LogLevel  string       `env:"LOG_LEVEL" envDefault:"info"`
	GitHub    GitHubConfig `envPrefix:"GITHUB_"`
	Limits    Limits       `envPrefix:"GITHUB_LIMIT_"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.MountPath = "/" + strings.Trim(cfg.MountPath, "/")
	cfg.GitHub.normalize()
	cfg.Limits = cfg.Limits.WithDefaults()

	return cfg, nil
}

// Account returns the per-request view of the configuration consumed by the
// activity service
func (c *Config) Account() Account {
	return Account{
		Username:      c.GitHub.Username,
		Limits:        c.Limits.WithDefaults(),
		Repos:         c.GitHub.Repos,
		FeaturedRepos: c.GitHub.FeaturedRepos,
	}
}

// Account identifies whose activity is aggregated and how much of it
type Account struct {
	Username      string
	Limits        Limits
	Repos         []string
	FeaturedRepos []string
}

package activity

import "github.com/Kamar-Folarin/github-activity/internal/models"

// Result is the outcome of a snapshot. It is either ProxySourced or
// DirectSourced, never a mix of both.
type Result interface {
	Snapshot() models.Snapshot
	sealed()
}

// ProxySourced holds categories read from the proxy service as-is
type ProxySourced struct {
	Data models.Snapshot
}

func (r ProxySourced) Snapshot() models.Snapshot {
	data := r.Data
	data.Source = models.SourceProxy
	return data
}

func (ProxySourced) sealed() {}

// DirectSourced holds categories fetched from the GitHub API
type DirectSourced struct {
	Data models.Snapshot
}

func (r DirectSourced) Snapshot() models.Snapshot {
	data := r.Data
	data.Source = models.SourceGitHub
	return data
}

func (DirectSourced) sealed() {}

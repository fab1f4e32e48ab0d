package activity

import (
	"context"

	"github.com/Kamar-Folarin/github-activity/internal/github"
)

// Client is the subset of the GitHub API the service reads from. It is
// satisfied by *github.Client.
type Client interface {
	// GetUser gets a user profile
	GetUser(ctx context.Context, username string) (*github.User, error)

	// GetUserEvents gets the events performed by a user
	GetUserEvents(ctx context.Context, username string, limit int) ([]github.Event, error)

	// GetUserReceivedEvents gets the events on repositories a user watches or owns
	GetUserReceivedEvents(ctx context.Context, username string, limit int) ([]github.Event, error)

	// GetUserStarred gets the repositories a user starred
	GetUserStarred(ctx context.Context, username string, limit int) ([]github.Repository, error)

	// GetUserRepos gets the repositories a user owns
	GetUserRepos(ctx context.Context, username string, limit int, sort string) ([]github.Repository, error)

	// GetRepo gets repository details
	GetRepo(ctx context.Context, owner, repo string) (*github.Repository, error)

	// GetRepoCommits gets the most recent commits of a repository
	GetRepoCommits(ctx context.Context, owner, repo string, limit int) ([]github.RepoCommit, error)

	// GetRepoEvents gets the activity stream of a repository
	GetRepoEvents(ctx context.Context, owner, repo string, limit int) ([]github.Event, error)
}

var _ Client = (*github.Client)(nil)

package activity

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Kamar-Folarin/github-activity/internal/github"
)

// MockClient implements Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetUser(ctx context.Context, username string) (*github.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*github.User)
	return user, args.Error(1)
}

func (m *MockClient) GetUserEvents(ctx context.Context, username string, limit int) ([]github.Event, error) {
	args := m.Called(ctx, username, limit)
	events, _ := args.Get(0).([]github.Event)
	return events, args.Error(1)
}

func (m *MockClient) GetUserReceivedEvents(ctx context.Context, username string, limit int) ([]github.Event, error) {
	args := m.Called(ctx, username, limit)
	events, _ := args.Get(0).([]github.Event)
	return events, args.Error(1)
}

func (m *MockClient) GetUserStarred(ctx context.Context, username string, limit int) ([]github.Repository, error) {
	args := m.Called(ctx, username, limit)
	repos, _ := args.Get(0).([]github.Repository)
	return repos, args.Error(1)
}

func (m *MockClient) GetUserRepos(ctx context.Context, username string, limit int, sort string) ([]github.Repository, error) {
	args := m.Called(ctx, username, limit, sort)
	repos, _ := args.Get(0).([]github.Repository)
	return repos, args.Error(1)
}

func (m *MockClient) GetRepo(ctx context.Context, owner, repo string) (*github.Repository, error) {
	args := m.Called(ctx, owner, repo)
	result, _ := args.Get(0).(*github.Repository)
	return result, args.Error(1)
}

func (m *MockClient) GetRepoCommits(ctx context.Context, owner, repo string, limit int) ([]github.RepoCommit, error) {
	args := m.Called(ctx, owner, repo, limit)
	commits, _ := args.Get(0).([]github.RepoCommit)
	return commits, args.Error(1)
}

func (m *MockClient) GetRepoEvents(ctx context.Context, owner, repo string, limit int) ([]github.Event, error) {
	args := m.Called(ctx, owner, repo, limit)
	events, _ := args.Get(0).([]github.Event)
	return events, args.Error(1)
}

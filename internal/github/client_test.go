package github

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, clockwork.FakeClock, *int32) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	clock := clockwork.NewFakeClock()
	client := NewClient(
		token,
		logger,
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithCacheTTL(time.Minute),
		WithClock(clock),
	)

	return client, clock, &calls
}

func TestClient_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "test-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/users/octocat", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
			assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))

			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Write([]byte(`{"login": "octocat", "name": "The Octocat", "public_repos": 8}`))
		})

		user, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", user.Login)
		assert.Equal(t, "The Octocat", user.Name)
		assert.Equal(t, 8, user.PublicRepos)
	})

	t.Run("anonymous request has no credential", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"login": "octocat"}`))
		})

		_, err := client.GetUser(ctx, "octocat")
		require.NoError(t, err)
	})

	t.Run("forbidden", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message": "API rate limit exceeded"}`))
		})

		_, err := client.GetUser(ctx, "octocat")
		require.Error(t, err)
		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
		assert.Equal(t, "API rate limit exceeded", upstreamErr.Message)
		assert.Equal(t, http.StatusForbidden, upstreamErr.HTTPStatus())
	})

	t.Run("error without message body", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetUser(ctx, "ghost")
		require.Error(t, err)
		var upstreamErr *UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, "Not Found", upstreamErr.Message)
	})

	t.Run("validation error", func(t *testing.T) {
		client, _, calls := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.GetUser(ctx, "")
		assert.IsType(t, &ValidationError{}, err)
		assert.Equal(t, int32(0), atomic.LoadInt32(calls))
	})
}

func TestClient_Caching(t *testing.T) {
	ctx := context.Background()
	client, clock, calls := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"login": "octocat"}`))
	})

	_, err := client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	_, err = client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls), "second call within ttl is served from cache")

	clock.Advance(time.Minute - time.Second)
	_, err = client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	clock.Advance(time.Second)
	_, err = client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls), "expired entry triggers exactly one refetch")

	_, err = client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestClient_CacheKeyIncludesQuery(t *testing.T) {
	ctx := context.Background()
	client, _, calls := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := client.GetUserStarred(ctx, "octocat", 20)
	require.NoError(t, err)
	_, err = client.GetUserStarred(ctx, "octocat", 40)
	require.NoError(t, err)
	_, err = client.GetUserStarred(ctx, "octocat", 20)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
	assert.Equal(t, 2, client.Cache().Len())
}

func TestClient_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	var fail atomic.Bool
	fail.Store(true)
	client, _, calls := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"login": "octocat"}`))
	})

	_, err := client.GetUser(ctx, "octocat")
	require.Error(t, err)

	fail.Store(false)
	user, err := client.GetUser(ctx, "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls), "no retries, one request per call")
}

func TestClient_GetUserEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated uses private endpoint", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "test-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/events", r.URL.Path)
			assert.Equal(t, "50", r.URL.Query().Get("per_page"))
			w.Write([]byte(`[{"id": "1", "type": "WatchEvent", "actor": {"login": "octocat"}, "repo": {"name": "octocat/hello"}, "payload": {"action": "started"}, "created_at": "2024-03-20T10:00:00Z"}]`))
		})

		events, err := client.GetUserEvents(ctx, "octocat", 50)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, WatchEventType, events[0].Type)
		assert.Equal(t, "2024-03-20T10:00:00Z", events[0].CreatedAt)
	})

	t.Run("anonymous uses public endpoint", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/events/public", r.URL.Path)
			assert.Equal(t, "30", r.URL.Query().Get("per_page"))
			w.Write([]byte(`[]`))
		})

		events, err := client.GetUserEvents(ctx, "octocat", 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestClient_GetUserReceivedEvents(t *testing.T) {
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/received_events", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[]`))
	})

	_, err := client.GetUserReceivedEvents(context.Background(), "octocat", 20)
	require.NoError(t, err)
}

func TestClient_GetUserStarred(t *testing.T) {
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/starred", r.URL.Path)
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[{"full_name": "golang/go", "description": "The Go programming language", "stargazers_count": 120000, "language": "Go", "topics": ["go", "language"]}]`))
	})

	repos, err := client.GetUserStarred(context.Background(), "octocat", 20)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "golang/go", repos[0].FullName)
	require.NotNil(t, repos[0].Language)
	assert.Equal(t, "Go", *repos[0].Language)
	assert.Equal(t, []string{"go", "language"}, repos[0].Topics)
}

func TestClient_GetUserRepos(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated lists own repositories", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "test-token", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user/repos", r.URL.Path)
			assert.Equal(t, "owner", r.URL.Query().Get("affiliation"))
			assert.Equal(t, "pushed", r.URL.Query().Get("sort"))
			assert.Equal(t, "desc", r.URL.Query().Get("direction"))
			w.Write([]byte(`[{"full_name": "octocat/private", "private": true}]`))
		})

		repos, err := client.GetUserRepos(ctx, "octocat", 10, "")
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.True(t, repos[0].Private)
	})

	t.Run("anonymous lists public repositories", func(t *testing.T) {
		client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/octocat/repos", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("affiliation"))
			assert.Equal(t, "updated", r.URL.Query().Get("sort"))
			w.Write([]byte(`[]`))
		})

		_, err := client.GetUserRepos(ctx, "octocat", 10, "updated")
		require.NoError(t, err)
	})
}

func TestClient_RepoEndpoints(t *testing.T) {
	ctx := context.Background()
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello":
			w.Write([]byte(`{"full_name": "octocat/hello", "stargazers_count": 5, "owner": {"login": "octocat"}}`))
		case "/repos/octocat/hello/commits":
			assert.Equal(t, "5", r.URL.Query().Get("per_page"))
			w.Write([]byte(`[{"sha": "abcdef1234567", "html_url": "https://github.com/octocat/hello/commit/abcdef1234567", "commit": {"message": "Initial commit", "author": {"name": "Octo", "date": "2024-03-20T10:00:00Z"}}}]`))
		case "/repos/octocat/hello/events":
			w.Write([]byte(`[{"type": "ForkEvent", "actor": {"login": "hubot"}, "repo": {"name": "octocat/hello"}, "payload": {"forkee": {"full_name": "hubot/hello"}}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	repo, err := client.GetRepo(ctx, "octocat", "hello")
	require.NoError(t, err)
	assert.Equal(t, "octocat/hello", repo.FullName)
	assert.Equal(t, "octocat", repo.Owner.Login)

	commits, err := client.GetRepoCommits(ctx, "octocat", "hello", 5)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "Initial commit", commits[0].Commit.Message)
	assert.Equal(t, "Octo", commits[0].Commit.Author.Name)

	events, err := client.GetRepoEvents(ctx, "octocat", "hello", 20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	fork, ok := events[0].Payload.(*ForkPayload)
	require.True(t, ok)
	assert.Equal(t, "hubot/hello", fork.Forkee.FullName)

	_, err = client.GetRepo(ctx, "", "hello")
	assert.IsType(t, &ValidationError{}, err)
	_, err = client.GetRepoCommits(ctx, "octocat", "", 5)
	assert.IsType(t, &ValidationError{}, err)
}

func TestClient_Search(t *testing.T) {
	ctx := context.Background()
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/issues", r.URL.Path)
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		switch r.URL.Query().Get("q") {
		case "author:octocat type:pr":
			w.Write([]byte(`{"total_count": 1, "items": [{"number": 7, "title": "Add feature", "pull_request": {"html_url": "https://github.com/o/r/pull/7"}}]}`))
		case "author:octocat type:issue":
			w.Write([]byte(`{"total_count": 0, "items": []}`))
		default:
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
	})

	prs, err := client.GetUserPRs(ctx, "octocat", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, prs.TotalCount)
	require.Len(t, prs.Items, 1)
	assert.NotNil(t, prs.Items[0].PullRequest)

	issues, err := client.GetUserIssues(ctx, "octocat", 10)
	require.NoError(t, err)
	assert.Empty(t, issues.Items)
}

func TestClient_NetworkError(t *testing.T) {
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})
	client.baseURL = "http://127.0.0.1:1"

	_, err := client.GetUser(context.Background(), "octocat")
	require.Error(t, err)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 0, upstreamErr.StatusCode)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.HTTPStatus())
}

func TestClient_MalformedResponse(t *testing.T) {
	client, _, _ := setupTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`invalid json`))
	})

	_, err := client.GetUser(context.Background(), "octocat")
	require.Error(t, err)
	assert.IsType(t, &UpstreamError{}, err)
	assert.Equal(t, 0, client.Cache().Len())
}

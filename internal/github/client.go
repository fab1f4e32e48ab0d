package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/Kamar-Folarin/github-activity/internal/cache"
)

const (
	DefaultBaseURL = "https://api.github.com"
	// DefaultPerPage is used when a non-positive limit is requested
	DefaultPerPage = 30
	apiVersion     = "2022-11-28"
)

// Client is a caching client for the GitHub REST API. Every request is
// memoized by its full URL for the cache TTL.
type Client struct {
	client   *http.Client
	baseURL  string
	token    string
	logger   *logrus.Logger
	cache    *cache.Cache
	cacheTTL time.Duration
	clock    clockwork.Clock
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client. When a token is set its
// transport is wrapped to add the bearer credential.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.client = httpClient
	}
}

// WithCache sets the fetch cache, which may be shared with the caller
func WithCache(fetchCache *cache.Cache) ClientOption {
	return func(c *Client) {
		c.cache = fetchCache
	}
}

// WithCacheTTL sets the TTL of the cache created by NewClient
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// WithClock sets the clock of the cache created by NewClient
func WithClock(clock clockwork.Clock) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

// NewClient creates a new GitHub client. An empty token makes anonymous
// requests against the public endpoints.
func NewClient(token string, logger *logrus.Logger, opts ...ClientOption) *Client {
	client := &Client{
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  DefaultBaseURL,
		token:    token,
		logger:   logger,
		cacheTTL: cache.DefaultTTL,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.cache == nil {
		client.cache = cache.New(client.cacheTTL, client.clock)
	}

	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		authed := *client.client
		authed.Transport = &oauth2.Transport{Source: ts, Base: client.client.Transport}
		client.client = &authed
	}

	return client
}

// Authenticated reports whether requests carry a credential
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// Cache returns the client's fetch cache
func (c *Client) Cache() *cache.Cache {
	return c.cache
}

// fetch performs a GET against endpoint and decodes the JSON body into
// result, serving from the cache while the entry is fresh
func (c *Client) fetch(ctx context.Context, endpoint string, result interface{}) error {
	reqURL := c.baseURL + endpoint
	logger := c.logger.WithField("url", reqURL)

	if body, ok := c.cache.Get(reqURL); ok {
		logger.Debug("Cache hit")
		return json.Unmarshal(body, result)
	}

	logger.Debug("Cache miss, requesting GitHub API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.WithError(err).Warn("Request failed")
		return NewUpstreamError(0, "request failed", reqURL, err)
	}
	defer resp.Body.Close()

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		logger.WithField("rate_limit_remaining", remaining).Debug("Rate limit info")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewUpstreamError(resp.StatusCode, "failed to read response body", reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		logger.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"message": message,
		}).Warn("GitHub API returned an error")
		return NewUpstreamError(resp.StatusCode, message, reqURL, nil)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return NewUpstreamError(resp.StatusCode, "failed to decode response", reqURL, err)
	}

	c.cache.Put(reqURL, body)
	return nil
}

func perPage(limit int) string {
	if limit <= 0 {
		limit = DefaultPerPage
	}
	return strconv.Itoa(limit)
}

func endpoint(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func userPath(username string, segments ...string) string {
	path := "/users/" + url.PathEscape(username)
	for _, s := range segments {
		path += "/" + s
	}
	return path
}

func repoPath(owner, repo string, segments ...string) string {
	path := "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo)
	for _, s := range segments {
		path += "/" + s
	}
	return path
}

func validateRepo(owner, repo string) error {
	if owner == "" {
		return NewValidationError("owner", "cannot be empty")
	}
	if repo == "" {
		return NewValidationError("repo", "cannot be empty")
	}
	return nil
}

// GetUser gets a user profile
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	var user User
	if err := c.fetch(ctx, userPath(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserEvents gets a user's events, newest first. Credentialed clients
// read /events, which includes private repository activity; anonymous
// clients read /events/public. Result sets differ between the two.
func (c *Client) GetUserEvents(ctx context.Context, username string, limit int) ([]Event, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	path := userPath(username, "events", "public")
	if c.Authenticated() {
		path = userPath(username, "events")
	}

	var events []Event
	if err := c.fetch(ctx, endpoint(path, url.Values{"per_page": {perPage(limit)}}), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetUserReceivedEvents gets events on repositories the user watches or owns
func (c *Client) GetUserReceivedEvents(ctx context.Context, username string, limit int) ([]Event, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	var events []Event
	path := endpoint(userPath(username, "received_events"), url.Values{"per_page": {perPage(limit)}})
	if err := c.fetch(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetUserStarred gets a user's starred repositories, most recently starred first
func (c *Client) GetUserStarred(ctx context.Context, username string, limit int) ([]Repository, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	query := url.Values{
		"per_page": {perPage(limit)},
		"sort":     {"created"},
	}

	var repos []Repository
	if err := c.fetch(ctx, endpoint(userPath(username, "starred"), query), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetUserRepos gets a user's repositories. Credentialed clients list the
// authenticated account's own public and private repositories; anonymous
// clients list the named user's public repositories.
func (c *Client) GetUserRepos(ctx context.Context, username string, limit int, sort string) ([]Repository, error) {
	if sort == "" {
		sort = "pushed"
	}

	query := url.Values{
		"per_page":  {perPage(limit)},
		"sort":      {sort},
		"direction": {"desc"},
	}

	path := "/user/repos"
	if c.Authenticated() {
		query.Set("affiliation", "owner")
	} else {
		if username == "" {
			return nil, NewValidationError("username", "cannot be empty")
		}
		path = userPath(username, "repos")
	}

	var repos []Repository
	if err := c.fetch(ctx, endpoint(path, query), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepo gets repository details
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*Repository, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}

	var result Repository
	if err := c.fetch(ctx, repoPath(owner, repo), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRepoCommits gets the most recent commits of a repository
func (c *Client) GetRepoCommits(ctx context.Context, owner, repo string, limit int) ([]RepoCommit, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}

	var commits []RepoCommit
	path := endpoint(repoPath(owner, repo, "commits"), url.Values{"per_page": {perPage(limit)}})
	if err := c.fetch(ctx, path, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// GetRepoEvents gets the activity stream of a repository
func (c *Client) GetRepoEvents(ctx context.Context, owner, repo string, limit int) ([]Event, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}

	var events []Event
	path := endpoint(repoPath(owner, repo, "events"), url.Values{"per_page": {perPage(limit)}})
	if err := c.fetch(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetUserPRs searches pull requests authored by the user, newest first
func (c *Client) GetUserPRs(ctx context.Context, username string, limit int) (*SearchResult, error) {
	return c.searchIssues(ctx, username, "pr", limit)
}

// GetUserIssues searches issues authored by the user, newest first
func (c *Client) GetUserIssues(ctx context.Context, username string, limit int) (*SearchResult, error) {
	return c.searchIssues(ctx, username, "issue", limit)
}

func (c *Client) searchIssues(ctx context.Context, username, kind string, limit int) (*SearchResult, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	query := url.Values{
		"q":        {fmt.Sprintf("author:%s type:%s", username, kind)},
		"per_page": {perPage(limit)},
		"sort":     {"created"},
		"order":    {"desc"},
	}

	var result SearchResult
	if err := c.fetch(ctx, endpoint("/search/issues", query), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

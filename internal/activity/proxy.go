package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-activity/internal/cache"
	"github.com/Kamar-Folarin/github-activity/internal/models"
)

// Proxy categories
const (
	CategoryStars    = "stars"
	CategoryCommits  = "commits"
	CategoryActivity = "activity"
	CategoryFeatured = "featured"
)

// ProxyClient reads precomputed categories from a service exposing
// GET <baseURL>/api/<category> with a {"<category>": [...]} envelope.
// Every failure is absorbed and reads as an empty category.
type ProxyClient struct {
	client  *http.Client
	baseURL string
	cache   *cache.Cache
	logger  *logrus.Logger
}

// ProxyOption allows configuring the proxy client
type ProxyOption func(*ProxyClient)

// WithProxyHTTPClient sets the underlying HTTP client
func WithProxyHTTPClient(httpClient *http.Client) ProxyOption {
	return func(p *ProxyClient) {
		p.client = httpClient
	}
}

// WithProxyCache sets the cache for proxy responses
func WithProxyCache(fetchCache *cache.Cache) ProxyOption {
	return func(p *ProxyClient) {
		p.cache = fetchCache
	}
}

// NewProxyClient creates a proxy client for the service mounted at baseURL
func NewProxyClient(baseURL string, logger *logrus.Logger, opts ...ProxyOption) *ProxyClient {
	p := &ProxyClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = cache.New(cache.DefaultTTL, nil)
	}
	return p
}

// Fetch reads the stars, commits, activity and featured categories
// concurrently. Contributions are not served by the proxy and stay empty.
func (p *ProxyClient) Fetch(ctx context.Context) models.Snapshot {
	snapshot := models.NewSnapshot(models.SourceProxy)

	var g errgroup.Group
	g.Go(func() error {
		snapshot.Stars = readCategory[models.Star](ctx, p, CategoryStars)
		return nil
	})
	g.Go(func() error {
		snapshot.Commits = readCategory[models.Commit](ctx, p, CategoryCommits)
		return nil
	})
	g.Go(func() error {
		snapshot.Activity = readCategory[models.RepoActivity](ctx, p, CategoryActivity)
		return nil
	})
	g.Go(func() error {
		snapshot.Featured = readCategory[models.Repository](ctx, p, CategoryFeatured)
		return nil
	})
	_ = g.Wait()

	return snapshot
}

func readCategory[T any](ctx context.Context, p *ProxyClient, category string) []T {
	logger := p.logger.WithField("category", category)

	body, err := p.get(ctx, category)
	if err != nil {
		logger.WithError(err).Debug("Proxy category unavailable")
		return []T{}
	}

	field := gjson.GetBytes(body, category)
	if !field.IsArray() {
		logger.Debug("Proxy response has no category list")
		return []T{}
	}

	items := make([]T, 0)
	if err := json.Unmarshal([]byte(field.Raw), &items); err != nil {
		logger.WithError(err).Debug("Failed to decode proxy category")
		return []T{}
	}
	return items
}

func (p *ProxyClient) get(ctx context.Context, category string) ([]byte, error) {
	reqURL := p.baseURL + "/api/" + category
	if body, ok := p.cache.Get(reqURL); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("proxy returned invalid JSON")
	}

	p.cache.Put(reqURL, body)
	return body, nil
}

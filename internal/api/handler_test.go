package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-activity/internal/activity"
	"github.com/Kamar-Folarin/github-activity/internal/config"
	apperrors "github.com/Kamar-Folarin/github-activity/internal/errors"
	"github.com/Kamar-Folarin/github-activity/internal/github"
	"github.com/Kamar-Folarin/github-activity/internal/models"
)

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Commits(ctx context.Context, acct config.Account) ([]models.Commit, error) {
	args := m.Called(ctx, acct)
	commits, _ := args.Get(0).([]models.Commit)
	return commits, args.Error(1)
}

func (m *MockActivityService) Stars(ctx context.Context, acct config.Account) ([]models.Star, error) {
	args := m.Called(ctx, acct)
	stars, _ := args.Get(0).([]models.Star)
	return stars, args.Error(1)
}

func (m *MockActivityService) Contributions(ctx context.Context, acct config.Account) ([]models.Contribution, error) {
	args := m.Called(ctx, acct)
	contributions, _ := args.Get(0).([]models.Contribution)
	return contributions, args.Error(1)
}

func (m *MockActivityService) Activity(ctx context.Context, acct config.Account) ([]models.RepoActivity, error) {
	args := m.Called(ctx, acct)
	events, _ := args.Get(0).([]models.RepoActivity)
	return events, args.Error(1)
}

func (m *MockActivityService) Repositories(ctx context.Context, acct config.Account) ([]models.Repository, error) {
	args := m.Called(ctx, acct)
	repos, _ := args.Get(0).([]models.Repository)
	return repos, args.Error(1)
}

func (m *MockActivityService) Featured(ctx context.Context, acct config.Account) ([]models.Repository, error) {
	args := m.Called(ctx, acct)
	repos, _ := args.Get(0).([]models.Repository)
	return repos, args.Error(1)
}

func (m *MockActivityService) Dashboard(ctx context.Context, acct config.Account) (*models.Dashboard, error) {
	args := m.Called(ctx, acct)
	dashboard, _ := args.Get(0).(*models.Dashboard)
	return dashboard, args.Error(1)
}

func (m *MockActivityService) Snapshot(ctx context.Context, acct config.Account) (activity.Result, error) {
	args := m.Called(ctx, acct)
	result, _ := args.Get(0).(activity.Result)
	return result, args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8080",
		MountPath: "/github",
		GitHub: config.GitHubConfig{
			Username:      "octocat",
			FeaturedRepos: []string{"octocat/hello"},
		},
		Limits: config.DefaultLimits(),
	}
}

func setupTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *MockActivityService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	service := new(MockActivityService)
	return SetupRouter(NewHandler(service, logger), cfg, logger), service
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetCommits(t *testing.T) {
	router, service := setupTestRouter(t, testConfig())
	service.On("Commits", mock.Anything, mock.MatchedBy(func(acct config.Account) bool {
		return acct.Username == "octocat" && acct.Limits.Commits == 10
	})).Return([]models.Commit{{SHA: "abcdef0", Repo: "octocat/hello"}}, nil)

	w := doRequest(router, "/github/api/commits")

	assert.Equal(t, http.StatusOK, w.Code)
	var response CommitsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Commits, 1)
	assert.Equal(t, "abcdef0", response.Commits[0].SHA)
	service.AssertExpectations(t)
}

func TestCategoryEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		method   string
		result   interface{}
		expected string
	}{
		{name: "stars", path: "/github/api/stars", method: "Stars", result: []models.Star{}, expected: `{"stars": []}`},
		{name: "contributions", path: "/github/api/contributions", method: "Contributions", result: []models.Contribution{}, expected: `{"contributions": []}`},
		{name: "activity", path: "/github/api/activity", method: "Activity", result: []models.RepoActivity{}, expected: `{"activity": []}`},
		{name: "repositories", path: "/github/api/repositories", method: "Repositories", result: []models.Repository{}, expected: `{"repositories": []}`},
		{name: "featured", path: "/github/api/featured", method: "Featured", result: []models.Repository{}, expected: `{"featured": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := setupTestRouter(t, testConfig())
			service.On(tt.method, mock.Anything, mock.Anything).Return(tt.result, nil)

			w := doRequest(router, tt.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expected, w.Body.String())
			service.AssertExpectations(t)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	router, service := setupTestRouter(t, testConfig())
	service.On("Dashboard", mock.Anything, mock.MatchedBy(func(acct config.Account) bool {
		return len(acct.FeaturedRepos) == 1
	})).Return(&models.Dashboard{
		User:          models.Profile{Login: "octocat"},
		Commits:       []models.Commit{},
		Contributions: []models.Contribution{},
		Stars:         []models.Star{},
		Repositories:  []models.Repository{},
		Featured:      []models.Repository{},
	}, nil)

	w := doRequest(router, "/github/api/dashboard")

	assert.Equal(t, http.StatusOK, w.Code)
	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, "octocat", dashboard.User.Login)
	assert.NotNil(t, dashboard.Commits)
}

func TestGetDashboard_UpstreamForbidden(t *testing.T) {
	router, service := setupTestRouter(t, testConfig())
	service.On("Dashboard", mock.Anything, mock.Anything).
		Return(nil, github.NewUpstreamError(http.StatusForbidden, "API rate limit exceeded", "https://api.github.com/users/octocat", nil))

	w := doRequest(router, "/github/api/dashboard")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "API rate limit exceeded"}`, w.Body.String())
}

func TestGetSnapshot(t *testing.T) {
	router, service := setupTestRouter(t, testConfig())
	snapshot := models.NewSnapshot("")
	snapshot.Stars = []models.Star{{Name: "golang/go"}}
	service.On("Snapshot", mock.Anything, mock.Anything).Return(activity.ProxySourced{Data: snapshot}, nil)

	w := doRequest(router, "/github/api/snapshot")

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.SourceProxy, response.Source)
	assert.Len(t, response.Stars, 1)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no username",
			err:            apperrors.NewNoUsernameError(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "No username configured"}`,
		},
		{
			name:           "upstream not found",
			err:            github.NewUpstreamError(http.StatusNotFound, "Not Found", "", nil),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error": "Not Found"}`,
		},
		{
			name:           "transport failure",
			err:            github.NewUpstreamError(0, "request failed", "", errors.New("connection refused")),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error": "request failed"}`,
		},
		{
			name:           "invalid argument",
			err:            github.NewValidationError("owner", "cannot be empty"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "validation error: invalid owner: cannot be empty"}`,
		},
		{
			name:           "unexpected",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error": "Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := setupTestRouter(t, testConfig())
			service.On("Stars", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(router, "/github/api/stars")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestConfigMiddleware_ReadsConfigPerRequest(t *testing.T) {
	cfg := testConfig()
	router, service := setupTestRouter(t, cfg)

	var seen []string
	service.On("Commits", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		seen = append(seen, args.Get(1).(config.Account).Username)
	}).Return([]models.Commit{}, nil)

	doRequest(router, "/github/api/commits")
	cfg.GitHub.Username = "hubot"
	doRequest(router, "/github/api/commits")

	assert.Equal(t, []string{"octocat", "hubot"}, seen)
}

func TestGetFeatured_WithoutUsername(t *testing.T) {
	cfg := testConfig()
	cfg.GitHub.Username = ""
	router, service := setupTestRouter(t, cfg)
	service.On("Featured", mock.Anything, mock.MatchedBy(func(acct config.Account) bool {
		return acct.Username == "" && len(acct.FeaturedRepos) == 1
	})).Return([]models.Repository{{Name: "octocat/hello"}}, nil)

	w := doRequest(router, "/github/api/featured")

	assert.Equal(t, http.StatusOK, w.Code)
	var response FeaturedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Featured, 1)
	assert.Equal(t, "octocat/hello", response.Featured[0].Name)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedType   apperrors.ErrorType
		expectedStatus int
		expectedMsg    string
	}{
		{name: "configuration", err: apperrors.NewNoUsernameError(), expectedType: apperrors.ErrConfiguration, expectedStatus: http.StatusBadRequest, expectedMsg: "No username configured"},
		{name: "upstream", err: github.NewUpstreamError(http.StatusForbidden, "rate limited", "", nil), expectedType: apperrors.ErrUpstream, expectedStatus: http.StatusForbidden, expectedMsg: "rate limited"},
		{name: "validation", err: github.NewValidationError("repo", "cannot be empty"), expectedType: apperrors.ErrValidation, expectedStatus: http.StatusBadRequest, expectedMsg: "validation error: invalid repo: cannot be empty"},
		{name: "already classified", err: apperrors.New(apperrors.ErrUpstream, "gateway", nil), expectedType: apperrors.ErrUpstream, expectedStatus: http.StatusBadGateway, expectedMsg: "gateway"},
		{name: "unknown", err: errors.New("boom"), expectedType: apperrors.ErrInternal, expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := classify(tt.err)
			assert.Equal(t, tt.expectedType, appErr.Type)
			assert.Equal(t, tt.expectedStatus, appErr.HTTPStatus())
			assert.Equal(t, tt.expectedMsg, appErr.Message)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

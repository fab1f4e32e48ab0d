package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-activity/internal/activity"
	"github.com/Kamar-Folarin/github-activity/internal/config"
	apperrors "github.com/Kamar-Folarin/github-activity/internal/errors"
	"github.com/Kamar-Folarin/github-activity/internal/github"
	"github.com/Kamar-Folarin/github-activity/internal/models"
)

const accountKey = "github.account"

// ActivityService defines the aggregation operations served over HTTP
type ActivityService interface {
	Commits(ctx context.Context, acct config.Account) ([]models.Commit, error)
	Stars(ctx context.Context, acct config.Account) ([]models.Star, error)
	Contributions(ctx context.Context, acct config.Account) ([]models.Contribution, error)
	Activity(ctx context.Context, acct config.Account) ([]models.RepoActivity, error)
	Repositories(ctx context.Context, acct config.Account) ([]models.Repository, error)
	Featured(ctx context.Context, acct config.Account) ([]models.Repository, error)
	Dashboard(ctx context.Context, acct config.Account) (*models.Dashboard, error)
	Snapshot(ctx context.Context, acct config.Account) (activity.Result, error)
}

var _ ActivityService = (*activity.Service)(nil)

// Handler serves the activity categories as JSON
type Handler struct {
	service ActivityService
	logger  *logrus.Logger
}

// NewHandler creates a new API handler
func NewHandler(service ActivityService, logger *logrus.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ConfigMiddleware makes the account of cfg available to the handlers of
// the request. The configuration is read on every request.
func ConfigMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(accountKey, cfg.Account())
		c.Next()
	}
}

func accountFrom(c *gin.Context) config.Account {
	if value, ok := c.Get(accountKey); ok {
		if acct, ok := value.(config.Account); ok {
			return acct
		}
	}
	return config.Account{}
}

// GetCommits returns the account's recent commits
// @Summary Get recent commits
// @Description Commits pushed by the configured account, newest first
// @Tags activity
// @Produce json
// @Success 200 {object} CommitsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/commits [get]
func (h *Handler) GetCommits(c *gin.Context) {
	commits, err := h.service.Commits(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "commits", err)
		return
	}
	respondWithJSON(c, http.StatusOK, CommitsResponse{Commits: commits})
}

// GetStars returns the account's recently starred repositories
// @Summary Get starred repositories
// @Tags activity
// @Produce json
// @Success 200 {object} StarsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/stars [get]
func (h *Handler) GetStars(c *gin.Context) {
	stars, err := h.service.Stars(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "stars", err)
		return
	}
	respondWithJSON(c, http.StatusOK, StarsResponse{Stars: stars})
}

// GetContributions returns the pull requests and issues the account opened
// @Summary Get contributions
// @Tags activity
// @Produce json
// @Success 200 {object} ContributionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/contributions [get]
func (h *Handler) GetContributions(c *gin.Context) {
	contributions, err := h.service.Contributions(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "contributions", err)
		return
	}
	respondWithJSON(c, http.StatusOK, ContributionsResponse{Contributions: contributions})
}

// GetActivity returns what others did on the account's repositories
// @Summary Get repository activity
// @Description Events by other users on the account's repositories, or on the configured repositories
// @Tags activity
// @Produce json
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/activity [get]
func (h *Handler) GetActivity(c *gin.Context) {
	events, err := h.service.Activity(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "activity", err)
		return
	}
	respondWithJSON(c, http.StatusOK, ActivityResponse{Activity: events})
}

// GetRepositories returns the account's repositories
// @Summary Get repositories
// @Tags repositories
// @Produce json
// @Success 200 {object} RepositoriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/repositories [get]
func (h *Handler) GetRepositories(c *gin.Context) {
	repos, err := h.service.Repositories(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "repositories", err)
		return
	}
	respondWithJSON(c, http.StatusOK, RepositoriesResponse{Repositories: repos})
}

// GetFeatured returns the featured repositories with their latest commits
// @Summary Get featured repositories
// @Description Repositories that cannot be loaded are left out
// @Tags repositories
// @Produce json
// @Success 200 {object} FeaturedResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/featured [get]
func (h *Handler) GetFeatured(c *gin.Context) {
	featured, err := h.service.Featured(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "featured", err)
		return
	}
	respondWithJSON(c, http.StatusOK, FeaturedResponse{Featured: featured})
}

// GetDashboard returns every category at once
// @Summary Get dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "dashboard", err)
		return
	}
	respondWithJSON(c, http.StatusOK, dashboard)
}

// GetSnapshot returns the categories for the site generator, from the proxy
// when it has data and from GitHub otherwise
// @Summary Get snapshot
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/snapshot [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	result, err := h.service.Snapshot(c.Request.Context(), accountFrom(c))
	if err != nil {
		h.respondWithServiceError(c, "snapshot", err)
		return
	}
	respondWithJSON(c, http.StatusOK, result.Snapshot())
}

// HealthCheck reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	respondWithJSON(c, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) respondWithServiceError(c *gin.Context, category string, err error) {
	appErr := classify(err)
	status := appErr.HTTPStatus()

	logger := h.logger.WithFields(logrus.Fields{
		"category":   category,
		"status":     status,
		"error_type": appErr.Type,
	}).WithError(err)
	if upstreamStatus := github.StatusCode(err); upstreamStatus != 0 {
		logger = logger.WithField("upstream_status", upstreamStatus)
	}

	switch {
	case apperrors.IsConfiguration(appErr):
		logger.Warn("Account not configured")
	case status >= http.StatusInternalServerError:
		logger.Error("Failed to serve request")
	default:
		logger.Warn("Request rejected")
	}

	respondWithError(c, status, appErr.Message)
}

// classify wraps err in an AppError whose message is safe to return to
// clients. Errors of unknown kind become internal errors.
func classify(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var cfgErr *apperrors.ConfigurationError
	if errors.As(err, &cfgErr) {
		return apperrors.New(apperrors.ErrConfiguration, cfgErr.Message, err)
	}
	var upstreamErr *github.UpstreamError
	if errors.As(err, &upstreamErr) {
		return apperrors.New(apperrors.ErrUpstream, upstreamErr.Message, err)
	}
	var validationErr *github.ValidationError
	if errors.As(err, &validationErr) {
		return apperrors.New(apperrors.ErrValidation, validationErr.Error(), err)
	}
	return apperrors.NewInternalError("Internal server error", err)
}

func respondWithJSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

func respondWithError(c *gin.Context, code int, message string) {
	respondWithJSON(c, code, ErrorResponse{Error: message})
}

package api

import (
	_ "github.com/Kamar-Folarin/github-activity/docs"
	"github.com/Kamar-Folarin/github-activity/internal/models"
)

// @title GitHub Activity API
// @version 1.0
// @description Aggregated GitHub activity of one account
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /github

// CommitsResponse wraps the commits category
// @Description Recent commits of the account
type CommitsResponse struct {
	Commits []models.Commit `json:"commits"`
}

// StarsResponse wraps the stars category
// @Description Recently starred repositories
type StarsResponse struct {
	Stars []models.Star `json:"stars"`
}

// ContributionsResponse wraps the contributions category
// @Description Pull requests and issues opened by the account
type ContributionsResponse struct {
	Contributions []models.Contribution `json:"contributions"`
}

// ActivityResponse wraps the activity category
// @Description Events by other users on the account's repositories
type ActivityResponse struct {
	Activity []models.RepoActivity `json:"activity"`
}

// RepositoriesResponse wraps the repositories category
type RepositoriesResponse struct {
	Repositories []models.Repository `json:"repositories"`
}

// FeaturedResponse wraps the featured repositories
// @Description Featured repositories with their latest commits
type FeaturedResponse struct {
	Featured []models.Repository `json:"featured"`
}

// ErrorResponse represents an error response
// @Description Error response from the API
type ErrorResponse struct {
	// Error message
	// @example No username configured
	Error string `json:"error" example:"No username configured"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

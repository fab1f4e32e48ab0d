package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Kamar-Folarin/github-activity/internal/config"
)

// SetupRouter configures the API routes. Everything except the health
// check and the API documentation is mounted under cfg.MountPath.
func SetupRouter(h *Handler, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/healthz", h.HealthCheck)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mount := r.Group(cfg.MountPath, ConfigMiddleware(cfg))
	{
		api := mount.Group("/api")
		{
			api.GET("/commits", h.GetCommits)
			api.GET("/stars", h.GetStars)
			api.GET("/contributions", h.GetContributions)
			api.GET("/activity", h.GetActivity)
			api.GET("/repositories", h.GetRepositories)
			api.GET("/featured", h.GetFeatured)
			api.GET("/dashboard", h.GetDashboard)
			api.GET("/snapshot", h.GetSnapshot)
		}
	}

	return r
}

// RequestLogger logs every request once it has been served
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("Request served")
			return
		}
		entry.Debug("Request served")
	}
}

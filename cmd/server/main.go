package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-activity/docs"
	"github.com/Kamar-Folarin/github-activity/internal/activity"
	"github.com/Kamar-Folarin/github-activity/internal/api"
	"github.com/Kamar-Folarin/github-activity/internal/config"
	"github.com/Kamar-Folarin/github-activity/internal/github"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.GitHub.Username == "" {
		logger.Warn("GITHUB_USERNAME is not set, API requests will be rejected")
	}

	// One client, and so one fetch cache, for the process lifetime
	client := github.NewClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithCacheTTL(cfg.GitHub.CacheTTL()),
	)
	logger.WithFields(logrus.Fields{
		"username":      cfg.GitHub.Username,
		"authenticated": cfg.GitHub.HasToken(),
		"cache_ttl":     cfg.GitHub.CacheTTL().String(),
	}).Info("GitHub client configured")

	var proxy *activity.ProxyClient
	if cfg.GitHub.ProxyURL != "" {
		proxy = activity.NewProxyClient(cfg.GitHub.ProxyURL, logger)
		logger.WithField("proxy_url", cfg.GitHub.ProxyURL).Info("Snapshot proxy enabled")
	}

	service := activity.NewService(client, proxy, logger, activity.WithConcurrency(cfg.GitHub.Concurrency))
	handler := api.NewHandler(service, logger)

	docs.SwaggerInfo.BasePath = cfg.MountPath
	router := api.SetupRouter(handler, cfg, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s, mounted at %s", cfg.Port, cfg.MountPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}

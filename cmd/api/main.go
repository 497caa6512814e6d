package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"collab-dashboard/config"
	_ "collab-dashboard/docs" // Swagger docs
	"collab-dashboard/internal/httpserver"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// @title       Collaboration Dashboard API
// @description Mailing lists, projects and discussion rooms over the collaboration platform API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting collaboration dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Remote API: %s", cfg.API.BaseURL)

	// 3. API gateway
	gateway := apigateway.NewClient(apigateway.Config{
		BaseURL:     cfg.API.BaseURL,
		AccessToken: cfg.API.AccessToken,
		Timeout:     cfg.API.Timeout,
		RatePerSec:  cfg.API.RatePerSec,
		Burst:       cfg.API.Burst,
	}, logger)
	if cfg.API.AccessToken == "" {
		logger.Warn(ctx, "api.access_token is empty: callers without a bearer token will be anonymous")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Gateway:           gateway,
		DefaultToken:      cfg.API.AccessToken,
		SessionTTL:        cfg.Session.TTL,
		SessionMaxEntries: cfg.Session.MaxEntries,
		RateLimitPerMin:   cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

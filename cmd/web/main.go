package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/barbershop-express/booking-web/internal/app/bootstrap"
	appconfig "github.com/barbershop-express/booking-web/internal/config"
	"github.com/barbershop-express/booking-web/internal/observability/metrics"
	"github.com/barbershop-express/booking-web/internal/schedulingapi"
	"github.com/barbershop-express/booking-web/internal/web/handlers"
	"github.com/barbershop-express/booking-web/internal/web/router"
	"github.com/barbershop-express/booking-web/internal/web/templates"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting booking-web",
		"env", cfg.Env,
		"port", cfg.Port,
		"api_base_url", cfg.APIBaseURL,
	)

	renderer, err := templates.New(logger)
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	redisClient := bootstrap.BuildRedisClient(context.Background(), cfg, logger, true)
	sessions := bootstrap.BuildSessionStore(redisClient, cfg, logger)

	m := metrics.NewBookingMetrics(nil)
	apiClient := schedulingapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, logger, m)

	h := handlers.New(cfg, logger, renderer, apiClient, sessions, m)
	r := router.New(cfg, logger, h, sessions)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	logger.Info("server stopped")
}

// Package main is the entry point for the navlens dashboard backend.
// navlens turns uploaded NAV (net asset value) histories into chart-ready
// derived series: a normalized equity curve, a running drawdown curve, and a
// year/month matrix of monthly returns, plus summary performance statistics.
//
// The HTTP API is stateless: every derivation is a pure function of the
// records submitted with the request, so there are no databases to manage and
// no background synchronization.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avramis/navlens/internal/config"
	"github.com/avramis/navlens/internal/server"
	"github.com/avramis/navlens/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting navlens")

	srv := server.New(server.Config{
		Log:     log,
		Config:  cfg,
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine so the main goroutine can wait for signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}

	log.Info().Msg("navlens stopped")
}

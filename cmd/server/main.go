// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/moodtune/internal/api"
	"github.com/tomtom215/moodtune/internal/config"
	"github.com/tomtom215/moodtune/internal/logging"
	"github.com/tomtom215/moodtune/internal/recommend"
	"github.com/tomtom215/moodtune/internal/supervisor"
	"github.com/tomtom215/moodtune/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Bool("spotify_configured", cfg.Spotify.Configured()).
		Str("token_store", cfg.TokenStore).
		Msg("Starting Moodtune with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := logging.Logger()

	store, closeStore, err := initTokenStore(ctx, cfg, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token store")
	}
	defer func() {
		if err := closeStore(); err != nil {
			logging.Error().Err(err).Msg("Error closing token store")
		}
	}()

	gateway := recommend.NewGateway(newGatewayConfig(cfg, store), logging.WithComponent("recommend"))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(api.NewHandler(gateway), newChiConfig(cfg))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Upstream layer
	if gateway.Mode() == recommend.ModeSpotify && (cfg.Spotify.PrewarmToken || cfg.Spotify.PrewarmInterval > 0) {
		tree.AddUpstreamService(services.NewTokenRefreshService(gateway, services.TokenRefreshConfig{
			WarmOnStartup: cfg.Spotify.PrewarmToken,
			Interval:      cfg.Spotify.PrewarmInterval,
		}, logger))
		logging.Info().
			Bool("prewarm", cfg.Spotify.PrewarmToken).
			Dur("interval", cfg.Spotify.PrewarmInterval).
			Msg("Token refresh service added")
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

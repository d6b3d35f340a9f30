// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodtune/internal/api"
	"github.com/tomtom215/moodtune/internal/config"
	"github.com/tomtom215/moodtune/internal/recommend"
)

// redisPingTimeout bounds the startup connectivity check.
const redisPingTimeout = 5 * time.Second

// initTokenStore builds the token store selected by TOKEN_STORE. The
// returned close function is never nil.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initTokenStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (recommend.TokenStore, func() error, error) {
	if cfg.TokenStore != config.TokenStoreRedis {
		logger.Info().Msg("Using in-memory Spotify token store")
		return recommend.NewMemoryTokenStore(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis %s unreachable: %w", cfg.Redis.Addr, err)
	}

	logger.Info().
		Str("addr", cfg.Redis.Addr).
		Int("db", cfg.Redis.DB).
		Str("key", cfg.Redis.Key).
		Msg("Using Redis Spotify token store")
	return recommend.NewRedisTokenStore(client, cfg.Redis.Key), client.Close, nil
}

// newGatewayConfig maps loaded configuration onto the gateway.
func newGatewayConfig(cfg *config.Config, store recommend.TokenStore) recommend.Config {
	return recommend.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		TokenURL:     cfg.Spotify.TokenURL,
		APIBaseURL:   cfg.Spotify.APIBaseURL,
		HTTPClient:   &http.Client{Timeout: cfg.Spotify.Timeout},
		Store:        store,
		Breaker: recommend.BreakerConfig{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			MinRequests:  cfg.Breaker.MinRequests,
			FailureRatio: cfg.Breaker.FailureRatio,
		},
	}
}

// newChiConfig maps security settings onto the router middleware.
func newChiConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	chiCfg := api.DefaultChiMiddlewareConfig()
	chiCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	chiCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	chiCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	chiCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return chiCfg
}

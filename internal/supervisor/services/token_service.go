// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// warmTimeout bounds one token exchange.
const warmTimeout = 30 * time.Second

// TokenWarmer caches a Spotify access token that stays valid for at least
// ahead. Satisfied by *recommend.Gateway.
type TokenWarmer interface {
	Warm(ctx context.Context, ahead time.Duration) error
}

// TokenRefreshConfig holds configuration for the token refresh service.
type TokenRefreshConfig struct {
	// WarmOnStartup fetches a token before the first request needs one.
	WarmOnStartup bool

	// Interval is how often the token is refreshed. Zero disables the
	// periodic refresh, leaving only the startup warm.
	Interval time.Duration
}

// TokenRefreshService keeps a client-credentials token cached so requests
// rarely pay for an exchange. Failures are logged and retried on the next
// tick; the request path still falls back on its own.
type TokenRefreshService struct {
	warmer TokenWarmer
	config TokenRefreshConfig
	logger zerolog.Logger
}

// NewTokenRefreshService creates a new token refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTokenRefreshService(warmer TokenWarmer, cfg TokenRefreshConfig, logger zerolog.Logger) *TokenRefreshService {
	return &TokenRefreshService{
		warmer: warmer,
		config: cfg,
		logger: logger.With().Str("service", "token-refresh").Logger(),
	}
}

// Serve implements the suture.Service interface.
func (s *TokenRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Dur("interval", s.config.Interval).
		Msg("token refresh service starting")

	if s.config.WarmOnStartup {
		s.warm(ctx)
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("token refresh service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

func (s *TokenRefreshService) warm(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()

	start := time.Now()
	if err := s.warmer.Warm(warmCtx, s.config.Interval); err != nil {
		s.logger.Warn().Err(err).Msg("token refresh failed, will retry on schedule")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("token refreshed")
}

// String returns the service name for logging.
func (s *TokenRefreshService) String() string {
	return "token-refresh"
}

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodtune/internal/logging"
	"github.com/tomtom215/moodtune/internal/metrics"
	"github.com/tomtom215/moodtune/internal/models"
)

// Gateway modes reported by Mode.
const (
	ModeSpotify  = "spotify"
	ModeFallback = "fallback"
)

// errEmptyResult marks a successful upstream call that returned no tracks.
var errEmptyResult = errors.New("spotify returned no tracks")

// Config configures a Gateway.
type Config struct {
	ClientID     string
	ClientSecret string

	// TokenURL and APIBaseURL override the Spotify endpoints; empty means
	// the public Spotify services.
	TokenURL   string
	APIBaseURL string

	// HTTPClient is used for both the token exchange and API calls.
	HTTPClient *http.Client

	// Store caches the access token. Nil means in-process memory.
	Store TokenStore

	Breaker BreakerConfig
}

// Configured reports whether both client credentials are present.
func (c Config) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Gateway produces recommendations from Spotify, degrading to placeholder
// tracks on any failure. GetRecommendations never fails.
type Gateway struct {
	configured bool
	tokens     *CredentialManager
	client     *Client
	breaker    *circuitBreaker
	logger     zerolog.Logger
}

// NewGateway creates a gateway. Without credentials it only serves
// placeholder tracks and performs no network I/O.
func NewGateway(cfg Config, logger zerolog.Logger) *Gateway {
	g := &Gateway{
		configured: cfg.Configured(),
		logger:     logger,
	}
	if !g.configured {
		logger.Warn().Msg("Spotify credentials not configured, serving placeholder recommendations")
		return g
	}

	g.tokens = NewCredentialManager(cfg.ClientID, cfg.ClientSecret, cfg.TokenURL, cfg.Store, cfg.HTTPClient, logger)
	g.client = NewClient(cfg.HTTPClient, cfg.APIBaseURL)
	g.breaker = newCircuitBreaker(cfg.Breaker, logger)
	return g
}

// Mode reports whether the gateway talks to Spotify.
func (g *Gateway) Mode() string {
	if g.configured {
		return ModeSpotify
	}
	return ModeFallback
}

// GetRecommendations returns Spotify recommendations for p, or the
// placeholder list when Spotify is unconfigured or the call fails.
func (g *Gateway) GetRecommendations(ctx context.Context, p models.Preferences) []models.Track {
	if !g.configured {
		metrics.RecordRecommendation(metrics.SourceFallback, "unconfigured")
		return GenerateFallback(p)
	}

	tracks, err := g.breaker.execute(func() ([]models.Track, error) {
		return g.fetch(ctx, p)
	})
	if err != nil {
		reason := fallbackReason(err)
		if errors.Is(err, errEmptyResult) {
			reason = "empty"
		}
		g.logger.Warn().
			Err(err).
			Str("request_id", logging.RequestIDFromContext(ctx)).
			Str("reason", reason).
			Str("mood", p.Mood).
			Str("time_of_day", p.TimeOfDay).
			Msg("Spotify recommendations unavailable, using fallback")
		metrics.RecordRecommendation(metrics.SourceFallback, reason)
		return GenerateFallback(p)
	}

	metrics.RecordRecommendation(metrics.SourceSpotify, "")
	return tracks
}

// Fallback returns the placeholder list for p.
func (g *Gateway) Fallback(p models.Preferences) []models.Track {
	return GenerateFallback(p)
}

// Warm makes sure the cached token stays valid for at least ahead. It is a
// no-op when unconfigured.
func (g *Gateway) Warm(ctx context.Context, ahead time.Duration) error {
	if !g.configured {
		return nil
	}
	return g.tokens.Refresh(ctx, ahead)
}

func (g *Gateway) fetch(ctx context.Context, p models.Preferences) ([]models.Track, error) {
	token, err := g.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	tracks, err := g.client.Recommendations(ctx, token, MapToParams(p))
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, errEmptyResult
	}
	return tracks, nil
}

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"server timeout", func(c *Config) { c.Server.Timeout = 0 }, "SERVER_TIMEOUT"},
		{"spotify timeout", func(c *Config) { c.Spotify.Timeout = 0 }, "SPOTIFY_TIMEOUT"},
		{"negative prewarm", func(c *Config) { c.Spotify.PrewarmInterval = -time.Second }, "SPOTIFY_PREWARM_INTERVAL"},
		{"token url with path", func(c *Config) { c.Spotify.TokenURL = "http://localhost:8080/api/token" }, ""},
		{"token url scheme", func(c *Config) { c.Spotify.TokenURL = "ftp://accounts.example/api/token" }, "SPOTIFY_TOKEN_URL"},
		{"api url without host", func(c *Config) { c.Spotify.APIBaseURL = "https:///v1" }, "SPOTIFY_API_BASE_URL"},
		{"api url with query", func(c *Config) { c.Spotify.APIBaseURL = "https://api.example/v1?x=1" }, "SPOTIFY_API_BASE_URL"},
		{"unknown token store", func(c *Config) { c.TokenStore = "badger" }, "TOKEN_STORE"},
		{"redis without addr", func(c *Config) { c.TokenStore = TokenStoreRedis }, "REDIS_ADDR"},
		{"redis ok", func(c *Config) { c.TokenStore = TokenStoreRedis; c.Redis.Addr = "redis:6379" }, ""},
		{"redis negative db", func(c *Config) {
			c.TokenStore = TokenStoreRedis
			c.Redis.Addr = "redis:6379"
			c.Redis.DB = -1
		}, "REDIS_DB"},
		{"failure ratio zero", func(c *Config) { c.Breaker.FailureRatio = 0 }, "BREAKER_FAILURE_RATIO"},
		{"failure ratio above one", func(c *Config) { c.Breaker.FailureRatio = 1.5 }, "BREAKER_FAILURE_RATIO"},
		{"negative breaker timeout", func(c *Config) { c.Breaker.Timeout = -time.Second }, "BREAKER_TIMEOUT"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"rate window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
		{"missing credentials are valid", func(c *Config) { c.Spotify.ClientID = "only-id" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestSpotifyConfig_Configured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id, secret string
		want       bool
	}{
		{"", "", false},
		{"id", "", false},
		{"", "secret", false},
		{"id", "secret", true},
	}
	for _, tt := range tests {
		s := SpotifyConfig{ClientID: tt.id, ClientSecret: tt.secret}
		if got := s.Configured(); got != tt.want {
			t.Errorf("Configured(%q, %q) = %v, want %v", tt.id, tt.secret, got, tt.want)
		}
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 5000, "0.0.0.0:5000"},
		{"", 8080, ":8080"},
		{"::1", 5000, "[::1]:5000"},
	}
	for _, tt := range tests {
		if got := (ServerConfig{Host: tt.host, Port: tt.port}).Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

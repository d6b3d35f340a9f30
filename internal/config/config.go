// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package config

import (
	"net"
	"strconv"
	"time"
)

// Token store kinds accepted by TOKEN_STORE.
const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
type Config struct {
	Server     ServerConfig   `koanf:"server"`
	Spotify    SpotifyConfig  `koanf:"spotify"`
	TokenStore string         `koanf:"token_store"`
	Redis      RedisConfig    `koanf:"redis"`
	Breaker    BreakerConfig  `koanf:"breaker"`
	Security   SecurityConfig `koanf:"security"`
	Logging    LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SpotifyConfig holds Spotify Web API settings.
//
// Environment Variables:
//   - SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET: app credentials (optional)
//   - SPOTIFY_TOKEN_URL: accounts service token endpoint override
//   - SPOTIFY_API_BASE_URL: Web API base URL override
//   - SPOTIFY_TIMEOUT: outbound HTTP timeout (default: 10s)
//   - SPOTIFY_PREWARM_TOKEN: fetch a token at startup (default: false)
//   - SPOTIFY_PREWARM_INTERVAL: background refresh interval, 0 disables (default: 0)
type SpotifyConfig struct {
	ClientID        string        `koanf:"client_id"`
	ClientSecret    string        `koanf:"client_secret"`
	TokenURL        string        `koanf:"token_url"`
	APIBaseURL      string        `koanf:"api_base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	PrewarmToken    bool          `koanf:"prewarm_token"`
	PrewarmInterval time.Duration `koanf:"prewarm_interval"`
}

// Configured reports whether both credentials are present.
func (s SpotifyConfig) Configured() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// RedisConfig holds the shared token store connection.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Key      string `koanf:"key"`
}

// BreakerConfig tunes the circuit breaker in front of the Spotify API.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds CORS and inbound rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

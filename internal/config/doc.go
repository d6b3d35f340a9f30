// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package config provides centralized configuration management for Moodtune.

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/moodtune/config.yaml)
 3. Environment variables, mapped explicitly by envTransformFunc

Unknown environment variables are ignored so unrelated process state never
leaks into the configuration.

# Spotify Credentials

SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET are optional. When either is
missing the service starts in fallback mode and serves placeholder tracks.

# Token Storage

TOKEN_STORE selects where the client-credentials token is cached:

  - memory: per-process cache (default)
  - redis: shared cache so several replicas reuse one token (REDIS_ADDR required)

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

Config is immutable after Load and safe for concurrent reads.
*/
package config

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

// Package recommend turns listener preferences into track recommendations.
//
// # Flow
//
// A Gateway receives validated models.Preferences and:
//
//  1. maps mood, time of day, genres and language onto Spotify audio-feature
//     targets (MapToParams);
//  2. obtains an app-level access token through the OAuth2
//     client-credentials grant, cached in a TokenStore (CredentialManager);
//  3. calls GET /v1/recommendations behind a circuit breaker (Client).
//
// Any failure along the way, including missing credentials, yields the six
// deterministic placeholder tracks from GenerateFallback. GetRecommendations
// therefore never returns an error and never returns an empty list.
//
// # Token storage
//
// MemoryTokenStore keeps the token in-process. RedisTokenStore shares it
// between replicas so a fleet performs one exchange per token lifetime.
//
// # Observability
//
// Served lists are counted by source and fallback reason; token exchanges,
// store lookups, upstream latency and breaker state are exported through the
// metrics package.
package recommend

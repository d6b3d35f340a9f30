// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package main is the entry point for the Moodtune server.

Moodtune turns a listener's language, mood, time of day and favourite genres
into a list of ten Spotify track recommendations. Without Spotify credentials,
or whenever Spotify fails, it answers with six placeholder tracks instead.

# Application Architecture

	RootSupervisor ("moodtune")
	├── UpstreamSupervisor ("upstream-layer")
	│   └── TokenRefreshService (SPOTIFY_PREWARM_TOKEN / SPOTIFY_PREWARM_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Token store: in-memory, or Redis shared across replicas
 4. Recommendation gateway: Spotify client, circuit breaker, fallback
 5. Router: Chi with request IDs, access logs, CORS, rate limits, metrics
 6. Supervisor tree: Suture v4 process supervision

# Endpoints

	POST /api/recommendations   mood-based recommendations
	GET  /api/health            status, mode and uptime
	GET  /api/health/live       liveness probe
	GET  /metrics               Prometheus exposition

# Example Usage

	export SPOTIFY_CLIENT_ID=...
	export SPOTIFY_CLIENT_SECRET=...
	./moodtune

	curl -X POST localhost:5000/api/recommendations \
	    -H 'Content-Type: application/json' \
	    -d '{"language":"english","mood":"happy","timeOfDay":"morning","genres":["pop"]}'

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to 10 seconds before the process exits.
*/
package main

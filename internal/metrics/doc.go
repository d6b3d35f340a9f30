// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with promauto on the default registry and exposed
at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: requests (counter; method, endpoint, status_code)
  - api_request_duration_seconds: latency (histogram; method, endpoint)
  - api_active_requests: in-flight requests (gauge)

Recommendation Metrics:
  - recommendations_served_total: served lists (counter; source, reason)
    source is spotify or fallback; reason names why the fallback was used

Spotify Metrics:
  - spotify_token_exchanges_total: client-credentials exchanges (counter; result)
  - spotify_token_cache_lookups_total: token store lookups (counter; result)
  - spotify_request_duration_seconds: Web API latency (histogram; status_code)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge; name)
  - circuit_breaker_requests_total: calls by outcome (counter; name, result)
  - circuit_breaker_consecutive_failures (gauge; name)
  - circuit_breaker_state_transitions_total (counter; name, from_state, to_state)
*/
package metrics

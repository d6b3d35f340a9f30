// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

All middleware uses the http.HandlerFunc form; the api package adapts it to
chi's func(http.Handler) http.Handler signature.

Usage Example:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation sources.
const (
	SourceSpotify  = "spotify"
	SourceFallback = "fallback"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Recommendation lists served, by source and fallback reason",
		},
		[]string{"source", "reason"}, // reason: "", "unconfigured", "credential", "upstream", "circuit_open", "empty", "handler_degraded"
	)

	TokenExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotify_token_exchanges_total",
			Help: "Client-credentials token exchanges against the Spotify accounts service",
		},
		[]string{"result"}, // result: "success", "failure"
	)

	TokenCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotify_token_cache_lookups_total",
			Help: "Token store lookups",
		},
		[]string{"result"}, // result: "hit", "miss", "error"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spotify_request_duration_seconds",
			Help:    "Duration of Spotify recommendations requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status_code"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation counts a served list. reason is empty for upstream results.
func RecordRecommendation(source, reason string) {
	RecommendationsServed.WithLabelValues(source, reason).Inc()
}

// RecordTokenExchange counts a client-credentials exchange.
func RecordTokenExchange(err error) {
	if err != nil {
		TokenExchanges.WithLabelValues("failure").Inc()
		return
	}
	TokenExchanges.WithLabelValues("success").Inc()
}

// RecordTokenLookup counts a token store read: "hit", "miss" or "error".
func RecordTokenLookup(result string) {
	TokenCacheLookups.WithLabelValues(result).Inc()
}

// RecordUpstreamRequest observes a Spotify API call. statusCode is "error"
// when no response was received.
func RecordUpstreamRequest(statusCode string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(statusCode).Observe(duration.Seconds())
}

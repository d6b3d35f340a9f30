// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package models

// RecommendationsResponse is the 200 body of POST /api/recommendations.
// Notice is only set when placeholder data was served after an unexpected
// failure.
//
//	{"tracks": [...]}
//	{"tracks": [...], "notice": "Using placeholder data. ..."}
type RecommendationsResponse struct {
	Tracks []Track `json:"tracks"`
	Notice string  `json:"notice,omitempty"`
}

// ErrorResponse is the body of 4xx/5xx responses.
//
//	{"message": "Invalid request data", "errors": [{"field": "genres", ...}]}
//	{"message": "Failed to get music recommendations", "error": "..."}
type ErrorResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Mode          string  `json:"mode"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

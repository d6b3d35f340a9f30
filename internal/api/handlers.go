// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodtune/internal/models"
)

// maxRequestBodyBytes bounds the preferences payload.
const maxRequestBodyBytes = 64 * 1024

// Recommender produces recommendation lists. *recommend.Gateway is the
// production implementation.
type Recommender interface {
	// GetRecommendations never fails; implementations degrade internally.
	GetRecommendations(ctx context.Context, p models.Preferences) []models.Track

	// Fallback returns the placeholder list for p.
	Fallback(p models.Preferences) []models.Track

	// Mode reports "spotify" or "fallback".
	Mode() string
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	recommender Recommender
	startTime   time.Time
}

// NewHandler creates a handler backed by recommender.
func NewHandler(recommender Recommender) *Handler {
	return &Handler{
		recommender: recommender,
		startTime:   time.Now(),
	}
}

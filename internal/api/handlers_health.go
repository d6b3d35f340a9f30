// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodtune/internal/models"
)

// Health reports service status and whether Spotify is configured.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:        "ok",
		Mode:          h.recommender.Mode(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"alive": true})
}

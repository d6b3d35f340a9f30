// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodtune/internal/logging"
	"github.com/tomtom215/moodtune/internal/models"
	"github.com/tomtom215/moodtune/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondValidationError sends 400 with the per-field issues.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
		Message: "Invalid request data",
		Errors:  verr.Issues(),
	})
}

// respondError sends an error response carrying the raw error detail.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := &models.ErrorResponse{Message: message}
	if err != nil {
		logging.Error().Int("status", status).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
		resp.Error = err.Error()
	}
	respondJSON(w, status, resp)
}

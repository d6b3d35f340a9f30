// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodtune/internal/logging"
	"github.com/tomtom215/moodtune/internal/metrics"
	"github.com/tomtom215/moodtune/internal/models"
	"github.com/tomtom215/moodtune/internal/recommend"
	"github.com/tomtom215/moodtune/internal/validation"
)

// PlaceholderNotice accompanies placeholder tracks served by the degraded path.
const PlaceholderNotice = "Using placeholder data. For actual Spotify recommendations, please configure API keys."

// Recommendations handles POST /api/recommendations.
//
// Request body: {"language","mood","timeOfDay","genres":[...]}
//
// Responses:
//   - 200 {"tracks":[...]}
//   - 200 {"tracks":[...],"notice":"..."} when the recommender failed and placeholder data was served
//   - 400 {"message":"Invalid request data","errors":[{field,tag,message}]}
//   - 500 {"message":"Failed to get music recommendations","error":"..."} carrying the first failure
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := decodeJSONBody(w, r, &prefs); err != nil {
		respondValidationError(w, validation.NewBodyError(err))
		return
	}
	if verr := validation.ValidateStruct(&prefs); verr != nil {
		respondValidationError(w, verr)
		return
	}

	tracks, err := h.recommend(r.Context(), prefs)
	if err == nil {
		respondJSON(w, http.StatusOK, &models.RecommendationsResponse{Tracks: tracks})
		return
	}

	logging.CtxErr(r.Context(), err).Msg("Recommendation failed, serving placeholder data")

	tracks, fbErr := h.degraded(prefs)
	if fbErr != nil {
		logging.CtxErr(r.Context(), fbErr).Msg("Placeholder data unavailable")
		respondError(w, http.StatusInternalServerError, "Failed to get music recommendations",
			&recommend.FallbackExhaustedError{Err: err})
		return
	}

	metrics.RecordRecommendation(metrics.SourceFallback, "handler_degraded")
	respondJSON(w, http.StatusOK, &models.RecommendationsResponse{
		Tracks: tracks,
		Notice: PlaceholderNotice,
	})
}

// recommend calls the recommender, converting a panic into an error.
func (h *Handler) recommend(ctx context.Context, p models.Preferences) (tracks []models.Track, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("recommender panicked: %v", rec)
		}
	}()
	return h.recommender.GetRecommendations(ctx, p), nil
}

// degraded re-validates p and serves the placeholder list.
func (h *Handler) degraded(p models.Preferences) (tracks []models.Track, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &recommend.FallbackExhaustedError{Err: fmt.Errorf("fallback panicked: %v", rec)}
		}
	}()

	if verr := validation.ValidateStruct(&p); verr != nil {
		return nil, verr
	}

	tracks = h.recommender.Fallback(p)
	if len(tracks) == 0 {
		return nil, &recommend.FallbackExhaustedError{Err: errors.New("no placeholder tracks")}
	}
	return tracks, nil
}

// decodeJSONBody decodes a single JSON object from the request body.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

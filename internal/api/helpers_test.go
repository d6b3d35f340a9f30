// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodtune/internal/models"
	"github.com/tomtom215/moodtune/internal/recommend"
)

// stubRecommender is a Recommender double with switchable failure modes.
type stubRecommender struct {
	tracks          []models.Track
	mode            string
	panicOnGet      bool
	panicOnFallback bool
	emptyFallback   bool

	getCalls      atomic.Int32
	fallbackCalls atomic.Int32
}

func (s *stubRecommender) GetRecommendations(_ context.Context, p models.Preferences) []models.Track {
	s.getCalls.Add(1)
	if s.panicOnGet {
		panic("spotify client exploded")
	}
	if s.tracks != nil {
		return s.tracks
	}
	return recommend.GenerateFallback(p)
}

func (s *stubRecommender) Fallback(p models.Preferences) []models.Track {
	s.fallbackCalls.Add(1)
	if s.panicOnFallback {
		panic("fallback exploded")
	}
	if s.emptyFallback {
		return nil
	}
	return recommend.GenerateFallback(p)
}

func (s *stubRecommender) Mode() string {
	if s.mode == "" {
		return recommend.ModeFallback
	}
	return s.mode
}

const validBody = `{"language":"english","mood":"happy","timeOfDay":"morning","genres":["pop","rock"]}`

func postRecommendations(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errorBody mirrors models.ErrorResponse with typed issues.
type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Tag     string `json:"tag"`
		Message string `json:"message"`
	} `json:"errors"`
	Error string `json:"error"`
}

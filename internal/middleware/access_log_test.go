// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodtune/internal/logging"
)

// Not parallel: swaps the global logger.
func TestAccessLog_Levels(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusInternalServerError, "error"},
		{http.StatusBadRequest, "warn"},
	}

	for _, tt := range tests {
		buf.Reset()

		handler := RequestID(AccessLog(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodPost, "/api/recommendations", nil))

		line := strings.TrimSpace(buf.String())
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("status %d: log line %q is not JSON: %v", tt.status, line, err)
		}
		if entry["level"] != tt.wantLevel {
			t.Errorf("status %d: level = %v, want %s", tt.status, entry["level"], tt.wantLevel)
		}
		if entry["path"] != "/api/recommendations" {
			t.Errorf("path = %v", entry["path"])
		}
		if entry["request_id"] != rec.Header().Get(RequestIDHeader) {
			t.Errorf("request_id = %v, want %s", entry["request_id"], rec.Header().Get(RequestIDHeader))
		}
	}
}

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package logging

import (
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext = %q, want req-123", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context returned %q", got)
	}
}

func TestContextWithNewCorrelationID(t *testing.T) {
	t.Parallel()

	ctx := ContextWithNewCorrelationID(context.Background())
	id := CorrelationIDFromContext(ctx)
	if len(id) != 8 {
		t.Errorf("correlation id %q should be 8 characters", id)
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate request id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	buf := captureLogs(t, "info")

	ctx := ContextWithRequestID(context.Background(), "req-abc")
	ctx = ContextWithCorrelationID(ctx, "corr1234")

	Ctx(ctx).Info().Msg("handled")
	CtxWarn(ctx).Msg("degraded")

	out := buf.String()
	if strings.Count(out, `"request_id":"req-abc"`) != 2 {
		t.Errorf("request_id should appear on both events: %s", out)
	}
	if !strings.Contains(out, `"correlation_id":"corr1234"`) {
		t.Errorf("correlation_id missing: %s", out)
	}
}

func TestCtx_NoIDs(t *testing.T) {
	buf := captureLogs(t, "info")

	Ctx(context.Background()).Info().Msg("bare")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %s", buf.String())
	}
}

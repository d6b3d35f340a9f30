// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"
)

// CredentialError is returned when the client-credentials exchange fails,
// either with a non-2xx status or a payload without an access token.
type CredentialError struct {
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *CredentialError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("spotify token exchange failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("spotify token exchange failed: %v", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// UpstreamError is returned when the recommendations call fails: transport
// errors, non-2xx statuses, undecodable bodies and an open circuit.
type UpstreamError struct {
	StatusCode int    // 0 when no HTTP response was received
	Detail     string // upstream error body, truncated
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("spotify API error %d: %s", e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("spotify API error %d", e.StatusCode)
	default:
		return fmt.Sprintf("spotify API request failed: %v", e.Err)
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// FallbackExhaustedError means even placeholder data could not be produced.
type FallbackExhaustedError struct {
	Err error
}

func (e *FallbackExhaustedError) Error() string {
	return fmt.Sprintf("fallback recommendations unavailable: %v", e.Err)
}

func (e *FallbackExhaustedError) Unwrap() error { return e.Err }

// fallbackReason classifies err for logs and metrics.
func fallbackReason(err error) string {
	var credErr *CredentialError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.As(err, &credErr):
		return "credential"
	default:
		return "upstream"
	}
}

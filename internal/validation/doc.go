// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

// Package validation provides struct validation using go-playground/validator v10.
//
// A singleton validator is created once with WithRequiredStructEnabled and
// reports fields by their JSON names, so error payloads match what clients
// sent rather than Go field names.
//
// # Quick Start
//
//	var prefs models.Preferences
//	if err := decodeJSONBody(w, r, &prefs); err != nil {
//	    respondValidationError(w, validation.NewBodyError(err))
//	    return
//	}
//	if verr := validation.ValidateStruct(&prefs); verr != nil {
//	    respondValidationError(w, verr)
//	    return
//	}
//
// # Messages
//
// Generic messages are produced per tag ("mood is required"). A struct that
// implements MessageProvider overrides them per field:
//
//	func (Preferences) ValidationMessages() map[string]string {
//	    return map[string]string{"genres": "Select at least one genre"}
//	}
//
// # Error Types
//
// RequestValidationError aggregates every failed field rule and flattens to
// []Issue for the JSON error envelope:
//
//	{"message": "Invalid request data",
//	 "errors": [{"field": "genres", "tag": "min", "message": "..."}]}
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation

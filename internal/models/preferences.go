// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package models

// Preferences is the validated shape of a recommendation request. Values are
// free-form strings; unknown moods, times of day and languages are accepted
// and simply contribute nothing to the upstream query.
type Preferences struct {
	Language  string   `json:"language" validate:"required"`
	Mood      string   `json:"mood" validate:"required"`
	TimeOfDay string   `json:"timeOfDay" validate:"required"`
	Genres    []string `json:"genres" validate:"required,min=1"`
}

// ValidationMessages implements validation.MessageProvider.
func (Preferences) ValidationMessages() map[string]string {
	return map[string]string{
		"language.required":  "Language is required",
		"mood.required":      "Mood is required",
		"timeOfDay.required": "Time of day is required",
		"genres.required":    "At least one genre is required",
		"genres.min":         "At least one genre is required",
	}
}

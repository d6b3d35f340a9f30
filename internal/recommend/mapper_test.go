// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"testing"

	"github.com/tomtom215/moodtune/internal/models"
)

func TestMapToParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefs  models.Preferences
		want   map[string]string
		absent []string
	}{
		{
			name:  "happy mood alone",
			prefs: models.Preferences{Mood: "happy", Genres: []string{"pop"}},
			want: map[string]string{
				"limit":          "10",
				"seed_genres":    "pop",
				"target_valence": "0.8",
				"min_valence":    "0.6",
				"target_energy":  "0.7",
			},
			absent: []string{"market"},
		},
		{
			name:  "time of day overrides mood targets",
			prefs: models.Preferences{Mood: "happy", TimeOfDay: "day", Genres: []string{"pop"}},
			want: map[string]string{
				"target_valence": "0.7",
				"min_valence":    "0.6",
				"target_energy":  "0.7",
			},
		},
		{
			name:  "energetic tempo is an integer",
			prefs: models.Preferences{Mood: "energetic", Genres: []string{"edm"}},
			want: map[string]string{
				"target_energy": "0.9",
				"min_energy":    "0.7",
				"target_tempo":  "140",
			},
		},
		{
			name:  "calm at night",
			prefs: models.Preferences{Mood: "calm", TimeOfDay: "night", Genres: []string{"jazz"}},
			want: map[string]string{
				"target_energy":       "0.4",
				"max_energy":          "0.5",
				"target_valence":      "0.4",
				"target_acousticness": "0.6",
			},
		},
		{
			name:  "sad in the evening",
			prefs: models.Preferences{Mood: "sad", TimeOfDay: "evening", Genres: []string{"blues"}},
			want: map[string]string{
				"target_valence": "0.5",
				"max_valence":    "0.4",
				"target_energy":  "0.5",
			},
		},
		{
			name:  "seven genres keep the first five",
			prefs: models.Preferences{Genres: []string{"a", "b", "c", "d", "e", "f", "g"}},
			want:  map[string]string{"seed_genres": "a,b,c,d,e"},
		},
		{
			name:   "unknown language adds no market",
			prefs:  models.Preferences{Language: "klingon", Genres: []string{"pop"}},
			absent: []string{"market"},
		},
		{
			name:  "known language sets market",
			prefs: models.Preferences{Language: "korean", Genres: []string{"k-pop"}},
			want:  map[string]string{"market": "KR"},
		},
		{
			name:   "unknown mood and time of day add no targets",
			prefs:  models.Preferences{Mood: "confused", TimeOfDay: "teatime", Genres: []string{"pop"}},
			absent: []string{"target_valence", "target_energy", "target_acousticness", "target_tempo"},
		},
		{
			name:   "keys are case sensitive",
			prefs:  models.Preferences{Mood: "Happy", Language: "English", Genres: []string{"pop"}},
			absent: []string{"target_valence", "market"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapToParams(tt.prefs)
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
			for _, k := range tt.absent {
				if v, ok := got[k]; ok {
					t.Errorf("%s should be absent, got %q", k, v)
				}
			}
			if got["limit"] != "10" {
				t.Errorf("limit = %q, want 10", got["limit"])
			}
		})
	}
}

func TestMapToParams_AllLanguages(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"english": "US", "spanish": "ES", "hindi": "IN", "french": "FR", "korean": "KR",
		"japanese": "JP", "german": "DE", "portuguese": "PT", "italian": "IT", "mandarin": "CN",
	}
	for lang, market := range want {
		got := MapToParams(models.Preferences{Language: lang, Genres: []string{"pop"}})
		if got["market"] != market {
			t.Errorf("%s: market = %q, want %q", lang, got["market"], market)
		}
	}
}

func TestMapToParams_DoesNotMutateGenres(t *testing.T) {
	t.Parallel()

	genres := []string{"a", "b", "c", "d", "e", "f"}
	MapToParams(models.Preferences{Genres: genres})
	if len(genres) != 6 || genres[5] != "f" {
		t.Errorf("genres mutated: %v", genres)
	}
}

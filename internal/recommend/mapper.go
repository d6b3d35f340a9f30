// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"strconv"
	"strings"

	"github.com/tomtom215/moodtune/internal/models"
)

const (
	// resultLimit is the number of tracks requested from Spotify.
	resultLimit = 10

	// maxSeedGenres is the Spotify limit on seed values per request.
	maxSeedGenres = 5
)

// audioTarget is one tunable audio feature, e.g. target_valence=0.8.
type audioTarget struct {
	key   string
	value float64
}

var moodTargets = map[string][]audioTarget{
	"happy": {
		{"target_valence", 0.8},
		{"min_valence", 0.6},
		{"target_energy", 0.7},
	},
	"sad": {
		{"target_valence", 0.2},
		{"max_valence", 0.4},
		{"target_energy", 0.3},
	},
	"energetic": {
		{"target_energy", 0.9},
		{"min_energy", 0.7},
		{"target_tempo", 140},
	},
	"calm": {
		{"target_energy", 0.3},
		{"max_energy", 0.5},
		{"target_acousticness", 0.7},
	},
}

// timeOfDayTargets are applied after moodTargets and win on shared keys.
var timeOfDayTargets = map[string][]audioTarget{
	"morning": {
		{"target_energy", 0.6},
		{"target_valence", 0.6},
	},
	"day": {
		{"target_energy", 0.7},
		{"target_valence", 0.7},
	},
	"evening": {
		{"target_energy", 0.5},
		{"target_valence", 0.5},
	},
	"night": {
		{"target_energy", 0.4},
		{"target_valence", 0.4},
		{"target_acousticness", 0.6},
	},
}

var languageMarkets = map[string]string{
	"english":    "US",
	"spanish":    "ES",
	"hindi":      "IN",
	"french":     "FR",
	"korean":     "KR",
	"japanese":   "JP",
	"german":     "DE",
	"portuguese": "PT",
	"italian":    "IT",
	"mandarin":   "CN",
}

// MapToParams translates preferences into Spotify /recommendations query
// parameters. Unknown moods, times of day and languages add nothing.
func MapToParams(p models.Preferences) map[string]string {
	params := map[string]string{
		"limit": strconv.Itoa(resultLimit),
	}

	if len(p.Genres) > 0 {
		seeds := p.Genres
		if len(seeds) > maxSeedGenres {
			seeds = seeds[:maxSeedGenres]
		}
		params["seed_genres"] = strings.Join(seeds, ",")
	}

	applyTargets(params, moodTargets[p.Mood])
	applyTargets(params, timeOfDayTargets[p.TimeOfDay])

	if market, ok := languageMarkets[p.Language]; ok {
		params["market"] = market
	}

	return params
}

func applyTargets(params map[string]string, targets []audioTarget) {
	for _, t := range targets {
		params[t.key] = strconv.FormatFloat(t.value, 'f', -1, 64)
	}
}

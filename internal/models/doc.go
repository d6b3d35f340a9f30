// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

/*
Package models defines the request and response shapes of the Moodtune API.

  - Preferences: the validated body of POST /api/recommendations
  - Track, Artist, Album, Image, ExternalURLs: the Spotify-compatible track shape
  - RecommendationsResponse, ErrorResponse, HealthStatus: response envelopes

JSON field names are part of the public contract. Track.PreviewURL is a
pointer so a missing preview encodes as null rather than "".
*/
package models

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package models

// Track is a single recommended track. Field names follow the Spotify Web API
// so clients can consume upstream and placeholder tracks identically.
//
// PreviewURL is nil when no 30 second preview exists; clients must disable
// playback for such tracks.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []Artist     `json:"artists"`
	Album        Album        `json:"album"`
	PreviewURL   *string      `json:"preview_url"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Artist is a track credit.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Album is the album a track appears on.
type Album struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Image is album artwork.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ExternalURLs links the track on the catalog platform.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

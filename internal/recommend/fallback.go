// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"github.com/tomtom215/moodtune/internal/models"
)

const (
	placeholderTrackURL   = "https://open.spotify.com/track/4iV5W9uYEdYUVa79Axb7Rh"
	placeholderPreviewURL = "https://p.scdn.co/mp3-preview/cb1ae1f9e2f97d9f441e201a6c7153533d710e"
	placeholderImageSize  = 640

	imageGuitar    = "https://cdn.pixabay.com/photo/2015/05/07/11/02/guitar-756326_960_720.jpg"
	imageTree      = "https://cdn.pixabay.com/photo/2015/04/23/22/00/tree-736885_960_720.jpg"
	imageNature    = "https://cdn.pixabay.com/photo/2018/01/14/23/12/nature-3082832_960_720.jpg"
	imageAstronomy = "https://cdn.pixabay.com/photo/2016/11/29/05/45/astronomy-1867616_960_720.jpg"
	imageFlowers   = "https://cdn.pixabay.com/photo/2016/11/18/16/19/flowers-1835619_960_720.jpg"
)

// GenerateFallback returns six deterministic placeholder tracks. Mood, time
// of day and language are interpolated into a few names so the list visibly
// follows the request; everything else is constant.
func GenerateFallback(p models.Preferences) []models.Track {
	return []models.Track{
		placeholderTrack("1", "Happy Vibes", "1", "Mood Album", imageGuitar, "57",
			models.Artist{ID: "1", Name: "Artist One"}),
		placeholderTrack("2", "Chill Moments", "2", "Evening Tracks", imageTree, "59",
			models.Artist{ID: "2", Name: "Artist Two"}),
		placeholderTrack("3", p.Mood+" Rhythm", "3", p.TimeOfDay+" Collection", imageTree, "60",
			models.Artist{ID: "3", Name: p.Language + " Artist"}),
		placeholderTrack("4", p.TimeOfDay+" Melody", "4", "Favorite Mix", imageNature, "61",
			models.Artist{ID: "4", Name: "Popular Band"},
			models.Artist{ID: "5", Name: "Featured Artist"}),
		placeholderTrack("5", "Sunset Tunes", "5", "Summer Collection", imageAstronomy, "62",
			models.Artist{ID: "6", Name: "Indie Group"}),
		placeholderTrack("6", "Urban Dreams", "6", "City Vibes", imageFlowers, "63",
			models.Artist{ID: "7", Name: "Urban Artist"}),
	}
}

func placeholderTrack(id, name, albumID, albumName, image, previewSuffix string, artists ...models.Artist) models.Track {
	preview := placeholderPreviewURL + previewSuffix
	return models.Track{
		ID:      id,
		Name:    name,
		Artists: artists,
		Album: models.Album{
			ID:   albumID,
			Name: albumName,
			Images: []models.Image{
				{URL: image, Height: placeholderImageSize, Width: placeholderImageSize},
			},
		},
		PreviewURL:   &preview,
		ExternalURLs: models.ExternalURLs{Spotify: placeholderTrackURL},
	}
}

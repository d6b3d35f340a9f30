// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/zmb3/spotify/v2"

	"github.com/tomtom215/moodtune/internal/metrics"
	"github.com/tomtom215/moodtune/internal/models"
)

const (
	// DefaultAPIBaseURL is the Spotify Web API root.
	DefaultAPIBaseURL = "https://api.spotify.com/v1"

	// maxErrorBodySize bounds how much of an error response is read.
	maxErrorBodySize = 64 * 1024
)

// wireTrack is the subset of a Spotify track object the service exposes.
type wireTrack struct {
	ID           spotify.ID             `json:"id"`
	Name         string                 `json:"name"`
	Artists      []spotify.SimpleArtist `json:"artists"`
	Album        spotify.SimpleAlbum    `json:"album"`
	PreviewURL   string                 `json:"preview_url"`
	ExternalURLs map[string]string      `json:"external_urls"`
}

type recommendationsPayload struct {
	Tracks []wireTrack `json:"tracks"`
}

// Client calls the Spotify Web API recommendations endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against baseURL, DefaultAPIBaseURL when empty.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Recommendations performs GET /recommendations with params as the query.
func (c *Client) Recommendations(ctx context.Context, token string, params map[string]string) ([]models.Track, error) {
	reqURL := c.buildURL("/recommendations", params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("error", time.Since(start))
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     readErrorDetail(resp.Body),
		}
	}

	var payload recommendationsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode recommendations: %w", err)}
	}

	tracks := make([]models.Track, 0, len(payload.Tracks))
	for i := range payload.Tracks {
		tracks = append(tracks, convertTrack(&payload.Tracks[i]))
	}
	return tracks, nil
}

func (c *Client) buildURL(endpoint string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	if len(q) == 0 {
		return c.baseURL + endpoint
	}
	return c.baseURL + endpoint + "?" + q.Encode()
}

// readErrorDetail extracts the message of a Spotify error object, or the raw
// body when it is not one.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var envelope struct {
		Error spotify.Error `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

func convertTrack(t *wireTrack) models.Track {
	track := models.Track{
		ID:      string(t.ID),
		Name:    t.Name,
		Artists: make([]models.Artist, 0, len(t.Artists)),
		Album: models.Album{
			ID:     string(t.Album.ID),
			Name:   t.Album.Name,
			Images: make([]models.Image, 0, len(t.Album.Images)),
		},
		ExternalURLs: models.ExternalURLs{Spotify: t.ExternalURLs["spotify"]},
	}

	for _, a := range t.Artists {
		track.Artists = append(track.Artists, models.Artist{ID: string(a.ID), Name: a.Name})
	}
	for _, img := range t.Album.Images {
		track.Album.Images = append(track.Album.Images, models.Image{
			URL:    img.URL,
			Height: int(img.Height),
			Width:  int(img.Width),
		})
	}
	if t.PreviewURL != "" {
		preview := t.PreviewURL
		track.PreviewURL = &preview
	}
	return track
}

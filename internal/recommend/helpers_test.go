// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/moodtune/internal/models"
)

const sampleRecommendations = `{
  "seeds": [{"id": "pop", "type": "GENRE"}],
  "tracks": [
    {
      "id": "3n3Ppam7vgaVa1iaRUc9Lp",
      "name": "Mr. Brightside",
      "artists": [{"id": "0C0XlULifJtAgn6ZNCW2eu", "name": "The Killers", "uri": "spotify:artist:0C0XlULifJtAgn6ZNCW2eu"}],
      "album": {
        "id": "6TJmQnO44YE5BtTxH8pop1",
        "name": "Hot Fuss",
        "images": [{"url": "https://i.scdn.co/image/ab67616d0000b273", "height": 640, "width": 640}]
      },
      "preview_url": null,
      "external_urls": {"spotify": "https://open.spotify.com/track/3n3Ppam7vgaVa1iaRUc9Lp"}
    },
    {
      "id": "7ouMYWpwJ422jRcDASZB7P",
      "name": "Somebody Told Me",
      "artists": [{"id": "0C0XlULifJtAgn6ZNCW2eu", "name": "The Killers"}],
      "album": {"id": "6TJmQnO44YE5BtTxH8pop1", "name": "Hot Fuss", "images": []},
      "preview_url": "https://p.scdn.co/mp3-preview/7ouMYWpwJ422jRcDASZB7P",
      "external_urls": {"spotify": "https://open.spotify.com/track/7ouMYWpwJ422jRcDASZB7P"}
    }
  ]
}`

// fakeSpotify serves the accounts token endpoint and the Web API
// recommendations endpoint from one httptest server.
type fakeSpotify struct {
	*httptest.Server

	tokenCalls atomic.Int32
	apiCalls   atomic.Int32

	tokenHandler http.HandlerFunc
	apiHandler   http.HandlerFunc
}

func newFakeSpotify(t *testing.T) *fakeSpotify {
	t.Helper()

	f := &fakeSpotify{
		tokenHandler: writeToken("test-access-token", 3600),
		apiHandler:   writeJSON(http.StatusOK, sampleRecommendations),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		f.tokenHandler(w, r)
	})
	mux.HandleFunc("/v1/recommendations", func(w http.ResponseWriter, r *http.Request) {
		f.apiCalls.Add(1)
		f.apiHandler(w, r)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *fakeSpotify) tokenURL() string { return f.URL + "/api/token" }
func (f *fakeSpotify) apiURL() string   { return f.URL + "/v1" }

func (f *fakeSpotify) gatewayConfig() Config {
	return Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     f.tokenURL(),
		APIBaseURL:   f.apiURL(),
		HTTPClient:   f.Client(),
		Store:        NewMemoryTokenStore(),
	}
}

func writeToken(token string, expiresIn int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if expiresIn > 0 {
			_, _ = w.Write([]byte(`{"access_token":"` + token + `","token_type":"Bearer","expires_in":` + strconv.Itoa(expiresIn) + `}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"` + token + `","token_type":"Bearer"}`))
	}
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// failingTransport fails the test when any request is attempted.
type failingTransport struct {
	t *testing.T
}

func (f failingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	f.t.Errorf("unexpected outbound request to %s", r.URL)
	return nil, http.ErrHandlerTimeout
}

func samplePreferences() models.Preferences {
	return models.Preferences{
		Language:  "english",
		Mood:      "happy",
		TimeOfDay: "morning",
		Genres:    []string{"pop", "rock"},
	}
}

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tomtom215/moodtune/internal/metrics"
)

// refreshMargin is how long before expiry a cached token is replaced.
const refreshMargin = 60 * time.Second

// CredentialManager obtains app-level access tokens with the OAuth2
// client-credentials grant and caches them in a TokenStore.
//
// Two concurrent callers that both observe an expired token may both
// exchange; the last Save wins. Either token is valid.
type CredentialManager struct {
	oauth      clientcredentials.Config
	store      TokenStore
	httpClient *http.Client
	now        func() time.Time
	logger     zerolog.Logger
}

// NewCredentialManager builds a manager for clientID/clientSecret. An empty
// tokenURL selects the Spotify accounts service.
func NewCredentialManager(clientID, clientSecret, tokenURL string, store TokenStore, httpClient *http.Client, logger zerolog.Logger) *CredentialManager {
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &CredentialManager{
		oauth: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		store:      store,
		httpClient: httpClient,
		now:        time.Now,
		logger:     logger,
	}
}

// Token returns a cached token when it is valid for at least refreshMargin,
// otherwise performs a fresh exchange and stores the result. Store failures
// are logged and never fail the call.
func (m *CredentialManager) Token(ctx context.Context) (string, error) {
	return m.token(ctx, refreshMargin)
}

// Refresh exchanges a new token unless the cached one outlives ahead plus
// refreshMargin, so a caller refreshing every ahead never lets it lapse.
func (m *CredentialManager) Refresh(ctx context.Context, ahead time.Duration) error {
	_, err := m.token(ctx, refreshMargin+ahead)
	return err
}

func (m *CredentialManager) token(ctx context.Context, margin time.Duration) (string, error) {
	cred, ok, err := m.store.Load(ctx)
	switch {
	case err != nil:
		metrics.RecordTokenLookup("error")
		m.logger.Warn().Err(err).Msg("Token store read failed, exchanging new token")
	case ok && cred.validAt(m.now(), margin):
		metrics.RecordTokenLookup("hit")
		return cred.Token, nil
	default:
		metrics.RecordTokenLookup("miss")
	}

	cred, err = m.exchange(ctx)
	metrics.RecordTokenExchange(err)
	if err != nil {
		return "", err
	}

	if err := m.store.Save(ctx, cred); err != nil {
		m.logger.Warn().Err(err).Msg("Token store write failed")
	}

	m.logger.Debug().Time("expires_at", cred.ExpiresAt).Msg("Obtained Spotify access token")
	return cred.Token, nil
}

func (m *CredentialManager) exchange(ctx context.Context) (Credential, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
	issuedAt := m.now()

	tok, err := m.oauth.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return Credential{}, &CredentialError{StatusCode: retrieveErr.Response.StatusCode, Err: err}
		}
		return Credential{}, &CredentialError{Err: err}
	}
	if tok.AccessToken == "" {
		return Credential{}, &CredentialError{Err: errors.New("response did not include an access token")}
	}

	lifetime, err := expiresIn(tok)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Token lifetime unreadable, token will not be reused")
	}

	return Credential{
		Token:     tok.AccessToken,
		ExpiresAt: issuedAt.Add(lifetime),
	}, nil
}

// expiresIn reads the raw expires_in field. A missing or malformed value
// yields a zero lifetime.
func expiresIn(tok *oauth2.Token) (time.Duration, error) {
	var seconds float64
	switch v := tok.Extra("expires_in").(type) {
	case nil:
		return 0, nil
	case float64:
		seconds = v
	case int64:
		seconds = float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("expires_in %q: %w", v, err)
		}
		seconds = f
	default:
		return 0, fmt.Errorf("expires_in has unexpected type %T", v)
	}
	if seconds <= 0 {
		return 0, nil
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

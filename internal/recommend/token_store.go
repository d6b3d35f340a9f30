// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"context"
	"sync"
	"time"
)

// Credential is a cached Spotify access token.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// validAt reports whether the credential can still be used at now with the
// given safety margin before expiry.
func (c Credential) validAt(now time.Time, margin time.Duration) bool {
	return c.Token != "" && now.Before(c.ExpiresAt.Add(-margin))
}

// TokenStore persists the current credential. Load reports false when no
// credential is stored.
type TokenStore interface {
	Load(ctx context.Context) (Credential, bool, error)
	Save(ctx context.Context, cred Credential) error
}

// MemoryTokenStore keeps the credential in process memory.
type MemoryTokenStore struct {
	mu   sync.RWMutex
	cred Credential
	set  bool
}

// NewMemoryTokenStore returns an empty in-process store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(_ context.Context) (Credential, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, s.set, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	s.set = true
	return nil
}

// Moodtune - Mood-based Music Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodtune

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key used when none is configured.
const DefaultRedisKey = "moodtune:spotify:token"

// redisCredential is the stored JSON document.
type redisCredential struct {
	Token       string `json:"token"`
	ExpiresAtMs int64  `json:"expires_at_ms"`
}

// RedisTokenStore shares the credential between replicas through Redis.
// Entries carry a TTL equal to the token's remaining lifetime, so an expired
// token disappears on its own.
type RedisTokenStore struct {
	client redis.Cmdable
	key    string
	now    func() time.Time
}

// NewRedisTokenStore creates a store on client under key.
func NewRedisTokenStore(client redis.Cmdable, key string) *RedisTokenStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisTokenStore{client: client, key: key, now: time.Now}
}

func (s *RedisTokenStore) Load(ctx context.Context) (Credential, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Credential{}, false, nil
	}
	if err != nil {
		return Credential{}, false, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var doc redisCredential
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Credential{}, false, fmt.Errorf("decode stored credential: %w", err)
	}

	return Credential{
		Token:     doc.Token,
		ExpiresAt: time.UnixMilli(doc.ExpiresAtMs),
	}, true, nil
}

func (s *RedisTokenStore) Save(ctx context.Context, cred Credential) error {
	ttl := cred.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		// Nothing worth sharing; drop any stale entry.
		return s.client.Del(ctx, s.key).Err()
	}

	data, err := json.Marshal(redisCredential{
		Token:       cred.Token,
		ExpiresAtMs: cred.ExpiresAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

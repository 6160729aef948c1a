package store

// Redis-backed snapshot store.  Matches and payments live under two
// keys mirroring the two collections of the session ("<prefix>:matches"
// and "<prefix>:payments"), serialized as JSON.  Keys have no TTL: a
// snapshot stays until the next one replaces it.

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// RedisStore persists snapshots in a Redis key-value store.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore constructs a RedisStore.  The client must be non-nil;
// callers that failed to reach Redis should fall back to an in-memory
// store instead.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if client == nil {
		panic("nil redis client passed to NewRedisStore")
	}
	if prefix == "" {
		prefix = "padel"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) matchesKey() string  { return s.prefix + ":matches" }
func (s *RedisStore) paymentsKey() string { return s.prefix + ":payments" }

// Save writes both collections in one round trip.
func (s *RedisStore) Save(ctx context.Context, snap Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	matches, err := json.Marshal(snap.Matches)
	if err != nil {
		return err
	}
	payments, err := json.Marshal(snap.Payments)
	if err != nil {
		return err
	}
	return s.client.MSet(ctx, s.matchesKey(), matches, s.paymentsKey(), payments).Err()
}

// Load reads both collections back.  Missing keys yield an empty
// snapshot so a fresh deployment starts cleanly.
func (s *RedisStore) Load(ctx context.Context) (Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var snap Snapshot
	raw, err := s.client.Get(ctx, s.matchesKey()).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// nothing saved yet
	case err != nil:
		return Snapshot{}, err
	default:
		var matches []model.Match
		if err := json.Unmarshal(raw, &matches); err != nil {
			return Snapshot{}, err
		}
		snap.Matches = matches
	}

	raw, err = s.client.Get(ctx, s.paymentsKey()).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return Snapshot{}, err
	default:
		var payments []model.PaymentTransaction
		if err := json.Unmarshal(raw, &payments); err != nil {
			return Snapshot{}, err
		}
		snap.Payments = payments
	}
	return snap, nil
}

// internal/ratestore/store.go
package ratestore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/rates"

	"github.com/redis/go-redis/v9"
)

// Store owns the current canonical rate snapshot. The ingestion collaborator
// replaces it wholesale each cycle; the engine only ever reads it.
type Store interface {
	SaveSnapshot(ctx context.Context, snapshot []rates.CanonicalRate) error
	CurrentRates(ctx context.Context) ([]rates.CanonicalRate, error)
}

// RedisStore keeps the snapshot as one JSON document under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, key string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: key, ttl: ttl}
}

func (s *RedisStore) SaveSnapshot(ctx context.Context, snapshot []rates.CanonicalRate) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.NewSnapshotStoreFailedError(err)
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return errors.NewSnapshotStoreFailedError(err)
	}
	return nil
}

// CurrentRates returns the latest snapshot, or nil when none has been
// written yet. A missing snapshot is not an error here; callers that need
// rates decide how to surface the absence.
func (s *RedisStore) CurrentRates(ctx context.Context) ([]rates.CanonicalRate, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewSnapshotStoreFailedError(err)
	}

	var snapshot []rates.CanonicalRate
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.NewSnapshotStoreFailedError(err)
	}
	return snapshot, nil
}

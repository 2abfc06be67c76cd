// internal/ratestore/store_test.go
package ratestore

import (
	"context"
	"testing"
	"time"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/rates"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() []rates.CanonicalRate {
	return []rates.CanonicalRate{
		{
			LoanType:   rates.Fixed30,
			Rate:       6.75,
			APR:        6.91,
			LockPeriod: 30,
			Source:     "zillow",
			ObservedAt: "2025-01-23T10:00:00Z",
			Fees:       1500,
		},
		{
			LoanType:   rates.Fixed15,
			Rate:       6.25,
			APR:        6.42,
			LockPeriod: 30,
			Source:     "bankrate",
			ObservedAt: "2025-01-23T10:00:00Z",
			Fees:       1200,
		},
	}
}

func testRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "rates:current", 30*24*time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))

	got, err := store.CurrentRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}

func TestRedisStore_MissingSnapshotIsNotAnError(t *testing.T) {
	store, _ := testRedisStore(t)

	got, err := store.CurrentRates(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_SaveReplacesWholesale(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))
	require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()[:1]))

	got, err := store.CurrentRates(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRedisStore_EmptySnapshotRoundTrips(t *testing.T) {
	store, _ := testRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, nil))

	got, err := store.CurrentRates(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestRedisStore_TTLIsApplied(t *testing.T) {
	store, mr := testRedisStore(t)

	require.NoError(t, store.SaveSnapshot(context.Background(), testSnapshot()))
	assert.Greater(t, mr.TTL("rates:current"), time.Duration(0))
}

func TestRedisStore_BackendFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, "rates:current", time.Hour)

	mock.ExpectGet("rates:current").SetErr(assert.AnError)

	_, err := store.CurrentRates(context.Background())
	require.Error(t, err)

	var engErr *errors.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, errors.ErrCodeSnapshotStoreFailed, engErr.Code)
	assert.True(t, engErr.Retryable)
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	store, mr := testRedisStore(t)
	mr.Set("rates:current", "not json")

	_, err := store.CurrentRates(context.Background())
	require.Error(t, err)

	var engErr *errors.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, errors.ErrCodeSnapshotStoreFailed, engErr.Code)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("empty store yields nil", func(t *testing.T) {
		got, err := store.CurrentRates(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.SaveSnapshot(ctx, testSnapshot()))
		got, err := store.CurrentRates(ctx)
		require.NoError(t, err)
		assert.Equal(t, testSnapshot(), got)
	})

	t.Run("callers cannot mutate the stored snapshot", func(t *testing.T) {
		got, err := store.CurrentRates(ctx)
		require.NoError(t, err)
		got[0].Rate = 99

		again, err := store.CurrentRates(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6.75, again[0].Rate)
	})
}

// internal/ingest/source_test.go
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lilshrooms/frankie/internal/common/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedPayload = `[
	{"product": "30yr_fixed", "rate": 6.75, "apr": 6.91, "fees": 1500, "source": "zillow", "timestamp": "2025-01-23T10:00:00Z"},
	{"product": "FHA 30-Year Fixed", "rate": "6.50", "apr": "6.67", "source": "bankrate", "timestamp": "2025-01-23T10:00:00Z"},
	{"rate": 6.25, "apr": 6.42},
	{"product": 12345, "rate": 6.25, "apr": 6.42}
]`

func TestParseFeed(t *testing.T) {
	t.Run("records failing the schema are dropped", func(t *testing.T) {
		records, err := parseFeed([]byte(feedPayload))
		require.NoError(t, err)

		// The last two entries have no usable product label.
		require.Len(t, records, 2)
		assert.Equal(t, "30yr_fixed", records[0].Product)
		assert.Equal(t, "zillow", records[0].Source)
		assert.Equal(t, "2025-01-23T10:00:00Z", records[0].ObservedAt)
		assert.Equal(t, "FHA 30-Year Fixed", records[1].Product)
		assert.Equal(t, "6.50", records[1].Rate)
	})

	t.Run("empty array is a valid feed", func(t *testing.T) {
		records, err := parseFeed([]byte(`[]`))
		require.NoError(t, err)
		assert.Len(t, records, 0)
	})

	t.Run("non-array payload is a hard error", func(t *testing.T) {
		_, err := parseFeed([]byte(`{"rates": []}`))
		require.Error(t, err)

		var engErr *errors.EngineError
		require.ErrorAs(t, err, &engErr)
		assert.Equal(t, errors.ErrCodeRateFeedMalformed, engErr.Code)
		assert.False(t, engErr.Retryable)
	})
}

func TestRedisFeedSource(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	t.Run("reads the payload from the feed key", func(t *testing.T) {
		mr.Set("rates:feed:raw", feedPayload)

		source := NewRedisFeedSource(client, "rates:feed:raw")
		records, err := source.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("missing key means the feed is unavailable", func(t *testing.T) {
		source := NewRedisFeedSource(client, "rates:feed:missing")
		_, err := source.Fetch(context.Background())
		require.Error(t, err)

		var engErr *errors.EngineError
		require.ErrorAs(t, err, &engErr)
		assert.Equal(t, errors.ErrCodeRateFeedUnavailable, engErr.Code)
		assert.True(t, engErr.Retryable)
	})
}

func TestFileFeedSource(t *testing.T) {
	t.Run("reads the payload from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feed.json")
		require.NoError(t, os.WriteFile(path, []byte(feedPayload), 0o644))

		source := NewFileFeedSource(path)
		records, err := source.Fetch(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("missing file means the feed is unavailable", func(t *testing.T) {
		source := NewFileFeedSource(filepath.Join(t.TempDir(), "nope.json"))
		_, err := source.Fetch(context.Background())
		require.Error(t, err)

		var engErr *errors.EngineError
		require.ErrorAs(t, err, &engErr)
		assert.Equal(t, errors.ErrCodeRateFeedUnavailable, engErr.Code)
	})
}

// internal/ingest/source.go
package ingest

import (
	"context"
	"encoding/json"
	"os"

	"github.com/lilshrooms/frankie/internal/common/errors"
	"github.com/lilshrooms/frankie/internal/common/metrics"
	"github.com/lilshrooms/frankie/internal/rates"

	"github.com/redis/go-redis/v9"
	"github.com/xeipuuv/gojsonschema"
)

// RawSource delivers the raw rate feed payload. Acquisition (scraping) is an
// external concern; sources here only read what a collector has already
// dropped off.
type RawSource interface {
	Fetch(ctx context.Context) ([]rates.RawRateRecord, error)
}

// recordSchema is deliberately permissive: a record needs a product label
// and may carry rate/apr/fees as number or string. Records failing even this
// are dropped silently before normalization; the envelope itself failing to
// parse is the only hard feed error.
var recordSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"product"},
	"properties": map[string]interface{}{
		"product":   map[string]interface{}{"type": "string"},
		"rate":      map[string]interface{}{"type": []string{"number", "string"}},
		"apr":       map[string]interface{}{"type": []string{"number", "string"}},
		"fees":      map[string]interface{}{"type": []string{"number", "string"}},
		"source":    map[string]interface{}{"type": "string"},
		"timestamp": map[string]interface{}{"type": "string"},
	},
}

var recordSchemaLoader = gojsonschema.NewGoLoader(recordSchema)

// parseFeed decodes a feed payload into raw records, dropping records that
// fail the permissive per-record schema.
func parseFeed(payload []byte) ([]rates.RawRateRecord, error) {
	var entries []map[string]interface{}
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, errors.NewRateFeedMalformedError(err)
	}

	records := make([]rates.RawRateRecord, 0, len(entries))
	for _, entry := range entries {
		result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewGoLoader(entry))
		if err != nil || !result.Valid() {
			metrics.RatesDropped.WithLabelValues("schema").Inc()
			continue
		}

		rec := rates.RawRateRecord{
			Rate: entry["rate"],
			APR:  entry["apr"],
			Fees: entry["fees"],
		}
		if p, ok := entry["product"].(string); ok {
			rec.Product = p
		}
		if s, ok := entry["source"].(string); ok {
			rec.Source = s
		}
		if ts, ok := entry["timestamp"].(string); ok {
			rec.ObservedAt = ts
		}
		records = append(records, rec)
	}

	return records, nil
}

// RedisFeedSource reads the feed payload from a Redis key written by the
// external scraper pipeline.
type RedisFeedSource struct {
	client *redis.Client
	key    string
}

func NewRedisFeedSource(client *redis.Client, key string) *RedisFeedSource {
	return &RedisFeedSource{client: client, key: key}
}

func (s *RedisFeedSource) Fetch(ctx context.Context) ([]rates.RawRateRecord, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		return nil, errors.NewRateFeedUnavailableError(err)
	}
	return parseFeed(payload)
}

// FileFeedSource reads the feed payload from a JSON file, for local runs and
// backfills.
type FileFeedSource struct {
	path string
}

func NewFileFeedSource(path string) *FileFeedSource {
	return &FileFeedSource{path: path}
}

func (s *FileFeedSource) Fetch(_ context.Context) ([]rates.RawRateRecord, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.NewRateFeedUnavailableError(err)
	}
	return parseFeed(payload)
}

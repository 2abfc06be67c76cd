// internal/ingest/collector.go
package ingest

import (
	"context"
	"time"

	"github.com/lilshrooms/frankie/internal/common/logger"
	"github.com/lilshrooms/frankie/internal/common/metrics"
	"github.com/lilshrooms/frankie/internal/common/observability"
	"github.com/lilshrooms/frankie/internal/rates"
	"github.com/lilshrooms/frankie/internal/ratestore"
)

// CycleResult summarizes one collection cycle.
type CycleResult struct {
	Date            string                             `json:"date"`
	Timestamp       string                             `json:"timestamp"`
	RawCount        int                                `json:"raw_rates_count"`
	NormalizedCount int                                `json:"normalized_rates_count"`
	Statistics      map[rates.LoanType]rates.RateStats `json:"statistics"`
	Sources         []string                           `json:"sources"`
	LoanTypes       []rates.LoanType                   `json:"loan_types"`
}

// Collector runs the periodic rate collection cycle: fetch the raw feed,
// normalize, compute statistics, and replace the current snapshot wholesale.
type Collector struct {
	source     RawSource
	store      ratestore.Store
	normalizer *rates.Normalizer
	obs        *observability.Observability
	log        logger.Logger
}

func NewCollector(source RawSource, store ratestore.Store, normalizer *rates.Normalizer, obs *observability.Observability, log logger.Logger) *Collector {
	return &Collector{
		source:     source,
		store:      store,
		normalizer: normalizer,
		obs:        obs,
		log:        log.WithFields(map[string]interface{}{"component": "rate-collector"}),
	}
}

// Collect performs one cycle. A cycle that normalizes zero records still
// replaces the snapshot: a stale snapshot is worse than an empty one.
func (c *Collector) Collect(ctx context.Context) (*CycleResult, error) {
	start := time.Now()
	now := start.UTC()

	c.log.Info("starting rate collection cycle", map[string]interface{}{
		"date": now.Format("2006-01-02"),
	})

	raw, err := c.source.Fetch(ctx)
	if err != nil {
		c.finishCycle(ctx, start, "error")
		c.log.WithError(err).Error("rate feed fetch failed", nil)
		return nil, err
	}

	normalized := c.normalizer.Normalize(raw)

	if err := c.store.SaveSnapshot(ctx, normalized); err != nil {
		c.finishCycle(ctx, start, "error")
		c.log.WithError(err).Error("snapshot save failed", nil)
		return nil, err
	}

	result := &CycleResult{
		Date:            now.Format("2006-01-02"),
		Timestamp:       now.Format(time.RFC3339),
		RawCount:        len(raw),
		NormalizedCount: len(normalized),
		Statistics:      rates.Stats(normalized),
		Sources:         distinctSources(normalized),
		LoanTypes:       distinctLoanTypes(normalized),
	}

	metrics.SnapshotSize.Set(float64(len(normalized)))
	c.finishCycle(ctx, start, "ok")

	c.log.Info("rate collection cycle completed", map[string]interface{}{
		"rawRates":        result.RawCount,
		"normalizedRates": result.NormalizedCount,
		"loanTypes":       len(result.LoanTypes),
	})

	return result, nil
}

// Run executes Collect on a fixed interval until the context is canceled.
// One cycle runs immediately on start.
func (c *Collector) Run(ctx context.Context, interval time.Duration) {
	if _, err := c.Collect(ctx); err != nil {
		c.log.WithError(err).Warn("initial collection cycle failed", nil)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("rate collector stopping", nil)
			return
		case <-ticker.C:
			if _, err := c.Collect(ctx); err != nil {
				c.log.WithError(err).Warn("collection cycle failed", nil)
			}
		}
	}
}

func (c *Collector) finishCycle(ctx context.Context, start time.Time, status string) {
	elapsed := time.Since(start)
	metrics.IngestCycles.WithLabelValues(status).Inc()
	metrics.IngestDuration.Observe(elapsed.Seconds())
	if c.obs != nil {
		c.obs.RecordCycle(ctx, status)
		c.obs.RecordCycleDuration(ctx, elapsed, status)
	}
}

func distinctSources(snapshot []rates.CanonicalRate) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range snapshot {
		if !seen[r.Source] {
			seen[r.Source] = true
			out = append(out, r.Source)
		}
	}
	return out
}

func distinctLoanTypes(snapshot []rates.CanonicalRate) []rates.LoanType {
	seen := make(map[rates.LoanType]bool)
	var out []rates.LoanType
	for _, r := range snapshot {
		if !seen[r.LoanType] {
			seen[r.LoanType] = true
			out = append(out, r.LoanType)
		}
	}
	return out
}

// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RatesNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_records_normalized_total",
			Help: "Total number of raw rate records normalized into the canonical schema",
		},
		[]string{"loan_type", "source"},
	)

	RatesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_records_dropped_total",
			Help: "Total number of raw rate records dropped during normalization",
		},
		[]string{"reason"},
	)

	IngestCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_ingest_cycles_total",
			Help: "Total number of rate collection cycles",
		},
		[]string{"status"},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rate_ingest_cycle_duration_seconds",
			Help:    "Duration of rate collection cycles",
			Buckets: prometheus.DefBuckets,
		},
	)

	SnapshotSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_snapshot_size",
			Help: "Number of canonical rates in the current snapshot",
		},
	)

	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_computed_total",
			Help: "Total number of quotes computed",
		},
		[]string{"loan_type", "status"},
	)

	OptimizationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "optimization_runs_total",
			Help: "Total number of scenario optimization runs",
		},
		[]string{"status"},
	)
)

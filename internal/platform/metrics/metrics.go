package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SyncMetrics holds the rate-synchronization metrics.
type SyncMetrics struct {
	RatesInsertedTotal prometheus.Counter
	RatesUpdatedTotal  prometheus.Counter
	RatesSkippedTotal  prometheus.Counter

	// Runs by resolved outcome (success/info/error)
	SyncRunsTotal prometheus.CounterVec

	SyncDuration prometheus.Histogram
}

// NewSyncMetrics registers and returns the rate-synchronization metrics.
func NewSyncMetrics() *SyncMetrics {
	return &SyncMetrics{
		RatesInsertedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rates_inserted_total",
			Help: "Number of new exchange rate rows created by synchronization",
		}),
		RatesUpdatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rates_updated_total",
			Help: "Number of stored exchange rates overwritten with a changed value",
		}),
		RatesSkippedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rates_skipped_total",
			Help: "Number of fetched rates that matched the stored value at 4 decimals",
		}),
		SyncRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_sync_runs_total",
				Help: "Synchronization runs by outcome status",
			},
			[]string{"status"},
		),
		SyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rate_sync_duration_seconds",
			Help:    "Wall time of one synchronization run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
	}
}

// RecordRun records one finished synchronization run.
func (m *SyncMetrics) RecordRun(status string, inserted, updated, skipped int, durationSeconds float64) {
	m.SyncRunsTotal.WithLabelValues(status).Inc()
	m.RatesInsertedTotal.Add(float64(inserted))
	m.RatesUpdatedTotal.Add(float64(updated))
	m.RatesSkippedTotal.Add(float64(skipped))
	m.SyncDuration.Observe(durationSeconds)
}

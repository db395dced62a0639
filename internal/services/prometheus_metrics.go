package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	lookupsTotal   *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		lookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_lookups_total",
				Help: "Total number of account lookups by outcome",
			},
			[]string{"outcome"},
		),
		lookupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "account_lookup_duration_milliseconds",
				Help:    "Account lookup duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// RecordLookup records one lookup attempt with its outcome label
func (m *PrometheusMetrics) RecordLookup(outcome string, duration time.Duration) {
	m.lookupsTotal.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(float64(duration.Milliseconds()))
}

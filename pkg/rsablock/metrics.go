package rsablock

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by a Cipher.
type Metrics struct {
	BlocksTotal       *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered. Registering twice on the same registerer panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		BlocksTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsablock_blocks_total",
				Help: "Total number of blocks processed",
			},
			[]string{"operation"},
		),
		OperationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rsablock_operation_duration_seconds",
				Help:    "Cipher operation duration in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"operation"},
		),
		OperationErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rsablock_operation_errors_total",
				Help: "Total number of failed cipher operations",
			},
			[]string{"operation"},
		),
	}
}

// RecordOperation records one call of operation over blocks blocks.
func (m *Metrics) RecordOperation(operation string, blocks int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.OperationErrors.WithLabelValues(operation).Inc()
		return
	}
	m.BlocksTotal.WithLabelValues(operation).Add(float64(blocks))
	m.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

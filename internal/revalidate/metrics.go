package revalidate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	revalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revalidations_total",
			Help: "Revalidation batches sent after a write",
		},
		[]string{"op", "status"}, // status: success|failure
	)

	revalidatedKeysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revalidated_keys_total",
			Help: "Cache keys marked stale",
		},
		[]string{"op"},
	)

	revalidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revalidation_duration_seconds",
			Help:    "Time spent delivering a revalidation batch",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

func recordRevalidation(op string, keys int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	revalidationsTotal.WithLabelValues(op, status).Inc()
	revalidatedKeysTotal.WithLabelValues(op).Add(float64(keys))
	revalidationDuration.Observe(d.Seconds())
}

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts login attempts by result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total login attempts by result",
		},
		[]string{"result"}, // result: success | failure | invalid | throttled
	)

	// authDuration tracks how long a login attempt takes.
	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Login duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// sessionChecksTotal counts gate decisions on admin routes.
	sessionChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_checks_total",
			Help: "Session gate decisions by result",
		},
		[]string{"result"},
	)

	sessionCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "session_check_duration_seconds",
			Help:    "Session gate check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// loginThrottledTotal counts login attempts rejected by the per-IP limiter.
	loginThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "login_throttled_total",
			Help: "Login attempts rejected by rate limiting",
		},
	)
)

// RecordAuthRequest records one login attempt.
func RecordAuthRequest(result string, durationSeconds float64) {
	authRequestsTotal.WithLabelValues(result).Inc()
	authDuration.Observe(durationSeconds)
}

// RecordSessionCheck records one gate decision.
func RecordSessionCheck(result string, durationSeconds float64) {
	sessionChecksTotal.WithLabelValues(result).Inc()
	sessionCheckDuration.Observe(durationSeconds)
}

// RecordLoginThrottled records a throttled login attempt.
func RecordLoginThrottled() {
	loginThrottledTotal.Inc()
}

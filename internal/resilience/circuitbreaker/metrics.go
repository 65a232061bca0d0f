package circuitbreaker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker"
)

var (
	state = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)

	transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state changes by breaker name and new state",
		},
		[]string{"name", "to"},
	)

	rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_rejections_total",
			Help: "Statements refused without reaching the database",
		},
		[]string{"name"},
	)
)

func recordState(name string, to gobreaker.State) {
	state.WithLabelValues(name).Set(stateValue(to))
	transitions.WithLabelValues(name, to.String()).Inc()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

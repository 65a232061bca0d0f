package retry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeRetry   = "retry"
	outcomeAborted = "aborted" // non-retryable error or context done
	outcomeGaveUp  = "gave_up"
)

var attemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "retry_attempts_total",
		Help: "Retry loop steps by policy name and outcome",
	},
	[]string{"name", "outcome"},
)

func recordAttempt(name, outcome string) {
	attemptsTotal.WithLabelValues(name, outcome).Inc()
}

package revalidate

import "github.com/prometheus/client_golang/prometheus"

func RevalidationCounter(op, status string) prometheus.Counter {
	return revalidationsTotal.WithLabelValues(op, status)
}

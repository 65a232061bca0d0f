package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_job_runs_total",
		Help: "Total number of background job runs by job and status (success/failure)",
	}, []string{"job", "status"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worker_job_duration_seconds",
		Help:    "Duration of background job runs in seconds",
		Buckets: []float64{.01, .05, .1, .5, 1, 5, 30},
	}, []string{"job"})

	jobLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "worker_job_last_success_timestamp",
		Help: "Unix timestamp of the last successful run of each background job",
	}, []string{"job"})

	configFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_config_fallbacks_total",
		Help: "Total number of invalid worker settings replaced by their default",
	}, []string{"env_key"})
)

func recordRun(job string, seconds float64, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	} else {
		jobLastSuccess.WithLabelValues(job).SetToCurrentTime()
	}
	jobRuns.WithLabelValues(job, status).Inc()
	jobDuration.WithLabelValues(job).Observe(seconds)
}

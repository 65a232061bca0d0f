package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track the content currently stored
var (
	// ArticlesTotal is the number of articles, refreshed periodically
	ArticlesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles by status",
		},
		[]string{"status"},
	)

	// CategoriesTotal is the number of categories, refreshed periodically
	CategoriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "categories_total",
			Help: "Total number of categories",
		},
	)
)

// Mutation metrics track the write pipeline
var (
	// MutationsTotal counts writes by entity, operation and outcome.
	// outcome is "success" or the error kind (validation, conflict, not_found,
	// precondition_failed, internal).
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mutations_total",
			Help: "Total number of admin write operations by outcome",
		},
		[]string{"entity", "op", "outcome"},
	)

	// MutationDuration measures the validate and persist stages of a write
	MutationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mutation_duration_seconds",
			Help:    "Admin write duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"entity", "op"},
	)
)

// Database metrics
var (
	// DBQueryDuration measures database query duration in seconds
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// DBConnectionsActive is the number of connections currently in use
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle is the number of idle connections in the pool
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)
)

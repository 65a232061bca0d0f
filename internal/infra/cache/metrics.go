package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_lookups_total",
			Help: "Page cache lookups by result",
		},
		[]string{"result"}, // hit|miss|stale
	)

	invalidatedKeys = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_cache_invalidated_keys_total",
			Help: "Revalidation keys applied to the page cache",
		},
	)
)

package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listingRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_requests_total",
			Help: "Article listing requests by status and page bucket",
		},
		[]string{"status", "page_bucket"},
	)

	listingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "listing_duration_seconds",
			Help:    "Article listing latency per stage",
			Buckets: []float64{0.005, 0.02, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"stage"},
	)

	// unknown category slug => unfiltered listing
	listingFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listing_category_fallbacks_total",
			Help: "Listings served unfiltered because the category slug was unknown",
		},
	)

	listingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_errors_total",
			Help: "Article listing failures by failing query",
		},
		[]string{"query"},
	)
)

// RecordRequest counts a finished listing request.
func RecordRequest(statusCode int, page int) {
	listingRequests.WithLabelValues(strconv.Itoa(statusCode), pageBucket(page)).Inc()
}

// RecordDuration observes seconds spent in stage ("handler" or "service").
func RecordDuration(stage string, seconds float64) {
	listingDuration.WithLabelValues(stage).Observe(seconds)
}

func RecordFallback() {
	listingFallbacks.Inc()
}

// RecordError counts a failed query: "category", "count" or "page".
func RecordError(query string) {
	listingErrors.WithLabelValues(query).Inc()
}

// Deep pages are rare on a news front page; keep the label set small.
func pageBucket(page int) string {
	switch {
	case page <= 1:
		return "1"
	case page <= 5:
		return "2-5"
	case page <= 20:
		return "6-20"
	default:
		return "21+"
	}
}

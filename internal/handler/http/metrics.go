package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/responsewriter"
)

// HTTP request metrics. Business gauges live in observability/metrics.
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "path", "status"},
	)

	// cached listing hits take a few ms, admin writes revalidate and can take seconds
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status",
			Buckets: []float64{.002, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Requests currently being served",
	})

	httpResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Response body size by route",
			Buckets: prometheus.ExponentialBuckets(256, 4, 7),
		},
		[]string{"method", "path"},
	)

	pageCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_page_cache_results_total",
			Help: "Public page cache hits and misses by route",
		},
		[]string{"path", "result"},
	)
)

// MetricsMiddleware labels series by normalized route, so
// /admin/articles/17 and /admin/articles/18 share one series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start).Seconds()

		path := pathutil.NormalizePath(r.URL.Path)
		status := strconv.Itoa(rw.StatusCode())
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(elapsed)
		httpResponseBytes.WithLabelValues(r.Method, path).Observe(float64(rw.BytesWritten()))
		if res := rw.CacheResult(); res != "" {
			pageCacheResults.WithLabelValues(path, strings.ToLower(res)).Inc()
		}
	})
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

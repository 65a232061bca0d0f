// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes the application-level metrics:
//   - Business gauges (articles, categories)
//   - Mutation outcomes and latency per entity and operation
//   - Database query and connection pool metrics
//
// HTTP request metrics live next to the middleware that records them in
// internal/handler/http. All metrics are registered with the Prometheus default
// registry and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	err := repo.Create(ctx, art)
//	metrics.RecordMutation("article", "create", err, time.Since(start))
package metrics

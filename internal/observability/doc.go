// Package observability groups the logging, metrics and tracing packages
// wired by cmd/api. It holds no code of its own.
//
//	logging  slog JSON/text handler, request-scoped logger in the context
//	metrics  business gauges refreshed by the stats job
//	tracing  OpenTelemetry provider, HTTP middleware, use case spans
package observability

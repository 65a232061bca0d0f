// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs an SDK tracer provider so that spans carry real trace IDs,
// which the access log and the X-Trace-Id response header expose for
// correlation. No exporter is configured here; spans are sampled and
// propagated but only leave the process if a processor is registered.
//
// Example usage:
//
//	shutdown := tracing.Setup(1.0)
//	defer func() { _ = shutdown(context.Background()) }()
//
//	func (s *Service) Create(ctx context.Context, in Input) error {
//	    ctx, span := tracing.GetTracer().Start(ctx, "article.Create")
//	    defer span.End()
//	}
package tracing

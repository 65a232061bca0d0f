package tracing

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/responsewriter"
)

// Middleware opens one server span per request, named "METHOD route" with
// the route normalized by pathutil. Incoming W3C trace context is honored and
// the trace id is echoed as X-Trace-Id. 5xx responses mark the span failed.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		route := pathutil.NormalizePath(r.URL.Path)

		ctx, span := tracer.Start(ctx, r.Method+" "+route, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			w.Header().Set("X-Trace-Id", sc.TraceID().String())
		}

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		status := rw.StatusCode()
		attrs := []attribute.KeyValue{
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.path", r.URL.Path),
			attribute.Int("http.status_code", status),
		}
		if id := requestid.FromContext(ctx); id != "" {
			attrs = append(attrs, attribute.String("request.id", id))
		}
		if res := rw.CacheResult(); res != "" {
			attrs = append(attrs, attribute.String("page_cache.result", strings.ToLower(res)))
		}
		span.SetAttributes(attrs...)

		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

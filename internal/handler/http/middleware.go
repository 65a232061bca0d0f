// Package http holds the server-wide middleware and the operational endpoints
// (health, readiness, liveness and metrics). Resource handlers live in the
// article, category and auth subpackages.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/handler/http/responsewriter"
)

// Chain applies mw so that the first element is the outermost handler.
func Chain(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// Logging writes one access log line per request. 5xx responses log at
// error level. The OpenTelemetry trace id ties the line to its span.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responsewriter.Wrap(w)
			next.ServeHTTP(rw, r)
			elapsed := time.Since(start)

			level := slog.LevelInfo
			if rw.StatusCode() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.Int("status", rw.StatusCode()),
				slog.Int("bytes", rw.BytesWritten()),
				slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
			}
			if res := rw.CacheResult(); res != "" {
				attrs = append(attrs, slog.String("cache", res))
			}
			logger.LogAttrs(r.Context(), level, "request completed", attrs...)
		})
	}
}

// Recover turns a panic into a 500 response and an error log with the stack.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				respond.Internal(w)

				// スタックトレース付きで記録
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody caps request bodies at maxBytes.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

const (
	maxCookieHeaderBytes = 8 << 10
	maxPathBytes         = 2 << 10
)

// InputLimits rejects requests whose Cookie header or path is oversized
// before any handler or the session gate parses them.
func InputLimits() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Cookie")) > maxCookieHeaderBytes {
				respond.Error(w, http.StatusRequestHeaderFieldsTooLarge, errors.New("cookie header too large"))
				return
			}
			if len(r.URL.Path) > maxPathBytes {
				respond.Error(w, http.StatusRequestURITooLong, errors.New("URI too long"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

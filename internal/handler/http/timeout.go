package http

import (
	"context"
	"net/http"
	"time"
)

// MutationTimeout bounds the request context of every non-read request by d.
// The handler is not abandoned when the deadline passes: storage calls observe
// the cancelled context and fail, and the handler reports that failure itself,
// so the client never sees a timeout for a write that actually committed.
// Reads keep the server-wide timeouts only. d <= 0 disables the bound.
func MutationTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authservice "newsdesk/internal/service/auth"
)

type ctxKey struct{}

// SessionFromContext returns the session stored by Gate.
func SessionFromContext(ctx context.Context) (authservice.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(authservice.Session)
	return s, ok
}

// Gate rejects requests to the admin subtree that do not carry a valid admin
// session. Every rejection is 403 with {"error":"forbidden"}; the handler is
// never reached, so a rejected mutation has no effect.
func Gate(verifier authservice.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !RequiresSession(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sess, reason := check(r, verifier)
			RecordSessionCheck(reason, time.Since(start).Seconds())

			if reason != reasonAllowed {
				logging.FromContext(r.Context()).Warn("session gate rejected request",
					slog.String("reason", reason),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				respond.Forbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("admin", sess.Subject)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

const (
	reasonAllowed   = "allowed"
	reasonMissing   = "missing"
	reasonInvalid   = "invalid"
	reasonNotAdmin  = "not_admin"
	reasonMalformed = "malformed"
)

func check(r *http.Request, verifier authservice.Verifier) (authservice.Session, string) {
	token := tokenFromRequest(r)
	if token == "" {
		return authservice.Session{}, reasonMissing
	}
	sess, err := verifier.Verify(r.Context(), token)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidSession) {
			return authservice.Session{}, reasonInvalid
		}
		return authservice.Session{}, reasonMalformed
	}
	if !sess.IsAdmin() {
		return authservice.Session{}, reasonNotAdmin
	}
	return sess, reasonAllowed
}

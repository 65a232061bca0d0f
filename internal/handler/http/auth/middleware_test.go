package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "newsdesk/internal/service/auth"
)

func okHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	}
}

func issue(t *testing.T, codec authservice.Issuer, role string, exp time.Time) string {
	t.Helper()
	token, err := codec.Issue(authservice.Session{Subject: "admin@example.com", Role: role, ExpiresAt: exp})
	require.NoError(t, err)
	return token
}

func TestGate_PublicPathsPassThrough(t *testing.T) {
	gate := Gate(NewJWTCodec(testSecret))(okHandler(t))

	for _, p := range []string{"/articles", "/articles/article-1", "/categories", "/health", "/metrics", "/swagger/index.html", "/auth/login", "/administrator"} {
		t.Run(p, func(t *testing.T) {
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "success", rec.Body.String())
		})
	}
}

func TestGate_AdminPaths(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		method string
		path   string
		cookie string
		want   int
	}{
		{"no cookie", http.MethodGet, "/admin/articles", "", http.StatusForbidden},
		{"no cookie on mutation", http.MethodDelete, "/admin/categories/1", "", http.StatusForbidden},
		{"garbage token", http.MethodPost, "/admin/articles", "not-a-token", http.StatusForbidden},
		{"expired token", http.MethodPut, "/admin/articles/1", issue(t, codec, authservice.RoleAdmin, time.Now().Add(-time.Minute)), http.StatusForbidden},
		{"non admin role", http.MethodGet, "/admin/articles", issue(t, codec, "viewer", future), http.StatusForbidden},
		{"valid admin", http.MethodGet, "/admin/articles", issue(t, codec, authservice.RoleAdmin, future), http.StatusOK},
		{"valid admin on root", http.MethodGet, "/admin", issue(t, codec, authservice.RoleAdmin, future), http.StatusOK},
		{"dot segments still gated", http.MethodGet, "/articles/../admin/articles", "", http.StatusForbidden},
	}

	gate := Gate(codec)(okHandler(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.URL.Path = tt.path
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			gate.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
			}
		})
	}
}

func TestGate_StoresSessionInContext(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	var got authservice.Session
	var ok bool
	gate := Gate(codec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issue(t, codec, authservice.RoleAdmin, time.Now().Add(time.Hour))})
	gate.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "admin@example.com", got.Subject)

	_, ok = SessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestSessionHandler(t *testing.T) {
	codec := NewJWTCodec(testSecret)
	h := Gate(codec)(http.HandlerFunc(SessionHandler))

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issue(t, codec, authservice.RoleAdmin, time.Now().Add(time.Hour))})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var info SessionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
	assert.Equal(t, "admin@example.com", info.Subject)
	assert.Equal(t, authservice.RoleAdmin, info.Role)
	assert.False(t, info.ExpiresAt.IsZero())

	// ゲートなしでは常に 403
	rec = httptest.NewRecorder()
	SessionHandler(rec, httptest.NewRequest(http.MethodGet, "/admin/session", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequiresSession(t *testing.T) {
	tests := map[string]bool{
		"/admin":               true,
		"/admin/":              true,
		"/admin/articles/3":    true,
		"admin/categories":     true,
		"/x/../admin/articles": true,
		"/administrator":       false,
		"/articles":            false,
		"/":                    false,
		"/auth/login":          false,
		"/swagger/admin/thing": false,
	}
	for p, want := range tests {
		assert.Equal(t, want, RequiresSession(p), p)
	}
}

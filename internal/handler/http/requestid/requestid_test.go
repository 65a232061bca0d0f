package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{"with request ID", WithRequestID(context.Background(), "test-id-123"), "test-id-123"},
		{"without request ID", context.Background(), ""},
		{"with invalid type in context", context.WithValue(context.Background(), ctxKey{}, 12345), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromContext(tt.ctx))
		})
	}
}

func run(header string) (ctxID, respID string) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if header != "" {
		req.Header.Set(Header, header)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return ctxID, rr.Header().Get(Header)
}

func TestMiddleware_PropagatesValidID(t *testing.T) {
	ctxID, respID := run("existing-request-id_456.v2")

	assert.Equal(t, "existing-request-id_456.v2", ctxID)
	assert.Equal(t, ctxID, respID)
}

func TestMiddleware_GeneratesWhenMissingOrInvalid(t *testing.T) {
	for _, header := range []string{
		"",
		"has space",
		"line\nbreak",
		`quote"`,
		strings.Repeat("a", maxLen+1),
	} {
		t.Run(header, func(t *testing.T) {
			ctxID, respID := run(header)

			require.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, respID)
			_, err := uuid.Parse(ctxID)
			assert.NoError(t, err, "generated ID should be a UUID")
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, _ := run("")
		assert.False(t, seen[id], "duplicate request id %s", id)
		seen[id] = true
	}
}

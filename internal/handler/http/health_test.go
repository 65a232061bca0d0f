package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBreaker gobreaker.State

func (b fixedBreaker) State() gobreaker.State { return gobreaker.State(b) }

type fixedRatio float64

func (r fixedRatio) HitRatio() float64 { return float64(r) }

func (r fixedRatio) Generations() int { return 7 }

func newPingDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func getHealth(t *testing.T, h *HealthHandler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

/* ───────────────────────────── /health ───────────────────────────── */

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		want       string
	}{
		{"healthy database", nil, http.StatusOK, "healthy"},
		{"database connection error", sql.ErrConnDone, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPingDB(t)
			db.SetMaxOpenConns(10)
			exp := mock.ExpectPing()
			if tt.pingErr != nil {
				exp.WillReturnError(tt.pingErr)
			}

			rec, resp := getHealth(t, &HealthHandler{DB: db, Version: "test-version"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, "test-version", resp.Version)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Contains(t, resp.Checks, "database")
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_PingErrorIsNotLeaked(t *testing.T) {
	db, mock := newPingDB(t)
	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	_, resp := getHealth(t, &HealthHandler{DB: db})
	assert.Equal(t, "database unreachable", resp.Checks["database"].Message)
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec, resp := getHealth(t, &HealthHandler{Version: "test-version"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "not configured", resp.Checks["database"].Message)
}

func TestHealthHandler_PoolChecks(t *testing.T) {
	t.Run("unlimited pool is degraded but operational", func(t *testing.T) {
		db, mock := newPingDB(t)
		db.SetMaxOpenConns(0)
		mock.ExpectPing()

		rec, resp := getHealth(t, &HealthHandler{DB: db})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", resp.Status)
		check := resp.Checks["database"]
		assert.Equal(t, "degraded", check.Status)
		assert.Equal(t, float64(0), check.Details["max_open_connections"])
		assert.NotContains(t, check.Details, "utilization_percent")
	})

	t.Run("idle pool reports zero utilization", func(t *testing.T) {
		db, mock := newPingDB(t)
		db.SetMaxOpenConns(10)
		mock.ExpectPing()

		_, resp := getHealth(t, &HealthHandler{DB: db})

		check := resp.Checks["database"]
		assert.Equal(t, "healthy", check.Status)
		assert.Equal(t, float64(0), check.Details["utilization_percent"])
	})
}

func TestHealthHandler_BreakerAndCache(t *testing.T) {
	tests := []struct {
		name       string
		state      gobreaker.State
		wantStatus string
	}{
		{"closed", gobreaker.StateClosed, "healthy"},
		{"half open", gobreaker.StateHalfOpen, "degraded"},
		{"open", gobreaker.StateOpen, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPingDB(t)
			db.SetMaxOpenConns(10)
			mock.ExpectPing()

			rec, resp := getHealth(t, &HealthHandler{DB: db, Breaker: fixedBreaker(tt.state), Cache: fixedRatio(0.75)})

			// ブレーカーが開いていても全体は 200
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantStatus, resp.Checks["circuit_breaker"].Status)
			assert.Equal(t, tt.state.String(), resp.Checks["circuit_breaker"].Details["state"])
			assert.Equal(t, 0.75, resp.Checks["page_cache"].Details["hit_ratio"])
			assert.Equal(t, float64(7), resp.Checks["page_cache"].Details["tracked_keys"])
		})
	}
}

/* ───────────────────────────── probes ───────────────────────────── */

func TestReadyHandler_ServeHTTP(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing()
		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ready", rec.Body.String())
	})

	t.Run("ping fails", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillReturnError(sql.ErrConnDone)
		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("slow ping times out", func(t *testing.T) {
		db, mock := newPingDB(t)
		mock.ExpectPing().WillDelayFor(3 * time.Second)
		rec := httptest.NewRecorder()
		(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("not configured", func(t *testing.T) {
		rec := httptest.NewRecorder()
		(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database not configured")
	})
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	LiveHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

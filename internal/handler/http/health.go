package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"newsdesk/internal/handler/http/respond"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// BreakerState reports the state of the database circuit breaker.
type BreakerState interface {
	State() gobreaker.State
}

// CacheStats reports page cache effectiveness.
type CacheStats interface {
	HitRatio() float64
	Generations() int
}

// HealthHandler reports database connectivity, pool usage, circuit breaker
// state and page cache hit ratio. Only a failed database ping is unhealthy;
// the other checks are informational.
type HealthHandler struct {
	DB      *sql.DB
	Version string
	Breaker BreakerState // optional
	Cache   CacheStats   // optional
}

// ServeHTTP godoc
// @Summary      ヘルスチェック
// @Description  データベース接続、サーキットブレーカー、ページキャッシュの状態を返します
// @Tags         ops
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	if h.DB != nil {
		checks["database"] = h.checkDatabase(ctx)
	} else {
		checks["database"] = CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	if checks["database"].Status == statusUnhealthy {
		healthy = false
	}

	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}
	if h.Cache != nil {
		checks["page_cache"] = CheckStatus{
			Status:  statusHealthy,
			Details: map[string]any{"hit_ratio": h.Cache.HitRatio(), "tracked_keys": h.Cache.Generations()},
		}
	}

	status, code := statusHealthy, http.StatusOK
	if !healthy {
		status, code = statusUnhealthy, http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		slog.Default().Warn("health: database ping failed", slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: statusUnhealthy, Message: "database unreachable"}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	// 0 は無制限
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: statusDegraded, Message: "connection pool max connections not configured", Details: details}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{Status: statusDegraded, Message: "connection pool utilization above 80%", Details: details}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func (h *HealthHandler) checkBreaker() CheckStatus {
	state := h.Breaker.State()
	check := CheckStatus{Status: statusHealthy, Details: map[string]any{"state": state.String()}}
	if state != gobreaker.StateClosed {
		check.Status = statusDegraded
		check.Message = "database circuit breaker is " + state.String()
	}
	return check
}

// ReadyHandler answers readiness probes: ready once the database answers a ping.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers liveness probes. It never touches dependencies.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}

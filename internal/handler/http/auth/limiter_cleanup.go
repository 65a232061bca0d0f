package auth

import (
	"context"
	"log/slog"
	"time"

	pkgconfig "newsdesk/pkg/config"
)

// CleanupConfig controls how often idle limiter entries are dropped.
type CleanupConfig struct {
	Interval time.Duration // how often to sweep
	MaxIdle  time.Duration // entries unused for longer are removed
}

// LoadCleanupConfigFromEnv reads LOGIN_LIMITER_CLEANUP_INTERVAL and
// LOGIN_LIMITER_MAX_IDLE. Bad values fall back to 5m and 15m.
func LoadCleanupConfigFromEnv() CleanupConfig {
	cfg := CleanupConfig{
		Interval: pkgconfig.GetEnvDuration("LOGIN_LIMITER_CLEANUP_INTERVAL", 5*time.Minute),
		MaxIdle:  pkgconfig.GetEnvDuration("LOGIN_LIMITER_MAX_IDLE", 15*time.Minute),
	}
	if pkgconfig.ValidatePositiveDuration(cfg.Interval) != nil {
		cfg.Interval = 5 * time.Minute
	}
	if pkgconfig.ValidatePositiveDuration(cfg.MaxIdle) != nil {
		cfg.MaxIdle = 15 * time.Minute
	}
	return cfg
}

// StartLimiterCleanup sweeps l every cfg.Interval until ctx is cancelled.
// It blocks; run it in its own goroutine.
func StartLimiterCleanup(ctx context.Context, l *LoginLimiter, cfg CleanupConfig) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	slog.Info("login limiter cleanup started",
		slog.Duration("interval", cfg.Interval),
		slog.Duration("max_idle", cfg.MaxIdle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("login limiter cleanup stopped")
			return
		case <-ticker.C:
			removed := l.Cleanup(cfg.MaxIdle)
			slog.Debug("login limiter cleanup completed",
				slog.Int("removed", removed),
				slog.Int("active", l.Len()))
		}
	}
}

// Package retry runs an operation again, with exponential backoff and jitter,
// while its error looks transient. It is used for startup connections and the
// periodic stats refresh; request-path writes are never retried.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Config controls one retry policy.
type Config struct {
	Name           string        // label for logs and the retry_attempts_total metric
	MaxAttempts    int           // total tries including the first; below 1 means 1
	InitialDelay   time.Duration // wait after the first failure
	MaxDelay       time.Duration // cap on any single wait
	Multiplier     float64       // growth per attempt; below 1 means constant delay
	JitterFraction float64       // up to this fraction of the delay is added at random (0..1)
}

// DBConfig is for short database reads such as the stats refresh.
func DBConfig() Config {
	return Config{
		Name:           "database",
		MaxAttempts:    3,
		InitialDelay:   100 * time.Millisecond,
		MaxDelay:       time.Second,
		Multiplier:     2,
		JitterFraction: 0.1,
	}
}

// StartupConfig is for connecting to a dependency that may still be booting,
// e.g. a database or broker container started alongside the service.
func StartupConfig(name string) Config {
	return Config{
		Name:           name,
		MaxAttempts:    10,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2,
		JitterFraction: 0.1,
	}
}

// Backoff returns the wait after the given failed attempt (1-based), before jitter.
//
//	cfg := Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2}
//	Backoff(cfg, 1) // 100ms
//	Backoff(cfg, 3) // 400ms
//	Backoff(cfg, 9) // 1s (capped)
func Backoff(cfg Config, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	m := cfg.Multiplier
	if m < 1 {
		m = 1
	}
	d := float64(cfg.InitialDelay) * math.Pow(m, float64(attempt-1))
	if cfg.MaxDelay > 0 && d > float64(cfg.MaxDelay) {
		return cfg.MaxDelay
	}
	return time.Duration(d)
}

// WithBackoff calls fn until it succeeds, returns a non-retryable error, the
// attempts run out, or ctx is done.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	attempts := max(cfg.MaxAttempts, 1)
	logger := slog.Default().With(slog.String("retry", cfg.Name))

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				logger.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			recordAttempt(cfg.Name, outcomeSuccess)
			return nil
		}

		if !IsRetryable(lastErr) {
			recordAttempt(cfg.Name, outcomeAborted)
			return lastErr
		}
		if attempt == attempts {
			break
		}

		delay := jitter(Backoff(cfg, attempt), cfg.JitterFraction)
		logger.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Duration("delay", delay),
			slog.Any("error", lastErr))
		recordAttempt(cfg.Name, outcomeRetry)

		t := time.NewTimer(delay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			recordAttempt(cfg.Name, outcomeAborted)
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}
	}

	recordAttempt(cfg.Name, outcomeGaveUp)
	return fmt.Errorf("max retry attempts (%d) exceeded: %w", attempts, lastErr)
}

// IsRetryable reports whether err is worth another attempt: network timeouts,
// refused or reset connections, pgx errors that never reached the server, and
// anything wrapped in TransientError. Context errors are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var transient *TransientError
	if errors.As(err, &transient) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	return pgconn.SafeToRetry(err)
}

// TransientError marks an error as worth retrying, e.g. a failed ping while
// the database container is still starting.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient: " + e.Err.Error() }

func (e *TransientError) Unwrap() error { return e.Err }

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = min(fraction, 1)
	// #nosec G404 -- jitter does not need cryptographic randomness
	return d + time.Duration(rand.Float64()*float64(d)*fraction)
}

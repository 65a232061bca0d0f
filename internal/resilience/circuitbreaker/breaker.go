// Package circuitbreaker sheds database statements while the database is
// failing, using github.com/sony/gobreaker. Open circuits fail fast with
// gobreaker.ErrOpenState instead of piling up blocked requests.
package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/sony/gobreaker"

	"newsdesk/internal/observability/metrics"
)

// Config controls when the breaker opens and how it recovers.
type Config struct {
	Name string

	// ConsecutiveFailures trips the breaker when reached.
	ConsecutiveFailures uint32

	// MaxRequests are let through while half-open; that many successes close it again.
	MaxRequests uint32

	// Interval clears the closed-state counts; 0 never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// IsSuccessful classifies errors that should not count as failures.
	// nil means only a nil error is a success.
	IsSuccessful func(err error) bool
}

// DBConfig opens after 5 consecutive failures and probes again after 30s.
func DBConfig() Config {
	return Config{
		Name:                "database",
		ConsecutiveFailures: 5,
		MaxRequests:         3,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
	}
}

// DB runs statements against a *sql.DB through a circuit breaker and records
// the duration of every statement it lets through. It satisfies the
// repositories' Queryer.
type DB struct {
	breaker *gobreaker.CircuitBreaker
	db      *sql.DB
	name    string
}

// NewDB wraps db with a breaker built from cfg.
func NewDB(db *sql.DB, cfg Config) *DB {
	threshold := max(cfg.ConsecutiveFailures, 1)
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		IsSuccessful: cfg.IsSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			recordState(name, to)
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}
	state.WithLabelValues(cfg.Name).Set(stateValue(gobreaker.StateClosed))
	return &DB{breaker: gobreaker.NewCircuitBreaker(settings), db: db, name: cfg.Name}
}

// QueryContext runs a query unless the circuit is open.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return run(d, query, func() (*sql.Rows, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
}

// ExecContext runs a statement unless the circuit is open.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return run(d, query, func() (sql.Result, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
}

func (d *DB) State() gobreaker.State { return d.breaker.State() }

func run[T any](d *DB, query string, fn func() (T, error)) (T, error) {
	start := time.Now()
	res, err := d.breaker.Execute(func() (any, error) { return fn() })
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		rejections.WithLabelValues(d.name).Inc()
		var zero T
		return zero, err
	}
	metrics.RecordDBQuery(statementKind(query), time.Since(start))
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

// statementKind returns the lower-cased leading SQL keyword, used as the metric label.
func statementKind(query string) string {
	kw := strings.TrimSpace(query)
	if kw == "" {
		return "unknown"
	}
	if i := strings.IndexFunc(kw, unicode.IsSpace); i > 0 {
		kw = kw[:i]
	}
	switch kw = strings.ToLower(kw); kw {
	case "select", "insert", "update", "delete", "with":
		return kw
	default:
		return "other"
	}
}

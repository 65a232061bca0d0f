package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"newsdesk/internal/resilience/retry"
	pkgconfig "newsdesk/pkg/config"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// ErrMissingDSN is returned when no data source name is configured.
var ErrMissingDSN = errors.New("DATABASE_URL not set")

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Config selects the driver and data source.
type Config struct {
	Driver string // DriverPostgres or DriverSQLite
	DSN    string
	Pool   ConnectionConfig
}

// ConfigFromEnv reads DB_DRIVER, DATABASE_URL and the pool variables.
// DB_DRIVER accepts "pgx", "postgres" or "sqlite" and defaults to pgx.
func ConfigFromEnv() Config {
	return Config{
		Driver: normalizeDriver(pkgconfig.GetEnvString("DB_DRIVER", DriverPostgres)),
		DSN:    pkgconfig.GetEnvString("DATABASE_URL", ""),
		Pool:   getConnectionConfigFromEnv(),
	}
}

func normalizeDriver(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return DriverPostgres
	}
}

// Open creates and configures a new database connection pool and waits,
// with backoff, until the database answers a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, ErrMissingDSN
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	pool := cfg.Pool
	if cfg.Driver == DriverSQLite {
		// SQLite serializes writers; a single connection also keeps
		// per-connection pragmas and in-memory databases consistent.
		pool.MaxOpenConns, pool.MaxIdleConns = 1, 1
		pool.ConnMaxLifetime, pool.ConnMaxIdleTime = 0, 0
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", pool.MaxOpenConns),
		slog.Int("max_idle_conns", pool.MaxIdleConns),
		slog.Duration("conn_max_lifetime", pool.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", pool.ConnMaxIdleTime))

	err = retry.WithBackoff(ctx, retry.StartupConfig("database"), func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return ping(pingCtx, db)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	slog.Info("database connection established successfully")
	return db, nil
}

// ping marks connection failures as retryable for the startup backoff.
func ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return &retry.TransientError{Err: err}
	}
	return nil
}

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Falls back to default values if not set or not positive.
func getConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	if val := pkgconfig.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns); val > 0 {
		cfg.MaxOpenConns = val
	}
	if val := pkgconfig.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns); val > 0 {
		cfg.MaxIdleConns = val
	}
	if val := pkgconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime); val > 0 {
		cfg.ConnMaxLifetime = val
	}
	if val := pkgconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime); val > 0 {
		cfg.ConnMaxIdleTime = val
	}

	return cfg
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"

	"newsdesk/internal/resilience/circuitbreaker"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

// SQLite result codes. The primary code is reported when extended codes are off.
const (
	sqliteConstraint           = 19
	sqliteConstraintForeignKey = 787
	sqliteConstraintUnique     = 2067
	sqliteConstraintPrimaryKey = 1555
)

// IsUniqueViolation reports whether err is a unique constraint failure from either driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return true
		case sqliteConstraint:
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}

// IsForeignKeyViolation reports whether err is a foreign key failure from either driver.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqliteConstraintForeignKey:
			return true
		case sqliteConstraint:
			return strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed")
		}
	}
	return false
}

// isConstraintViolation covers every integrity error the application expects to see.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == pgIntegrityClass
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqliteConstraint
	}
	return false
}

// BreakerConfig returns the database circuit breaker settings. Constraint
// violations, missing rows and caller cancellations are outcomes of the
// request, not signs of an unhealthy database, so they do not trip the breaker.
func BreakerConfig() circuitbreaker.Config {
	cfg := circuitbreaker.DBConfig()
	cfg.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, sql.ErrNoRows) ||
			errors.Is(err, context.Canceled) ||
			isConstraintViolation(err)
	}
	return cfg
}

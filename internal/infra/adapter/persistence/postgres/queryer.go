// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

// Queryer is the subset of *sql.DB the repositories need.
// circuitbreaker.DB implements it as well.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// queryOne runs query and scans the first row into dest.
// found is false when the query returned no rows.
func queryOne(ctx context.Context, q Queryer, query string, args []any, dest ...any) (found bool, err error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err := rows.Scan(dest...); err != nil {
		return false, err
	}
	return true, rows.Err()
}

// mapWriteError translates constraint violations into repository sentinels.
func mapWriteError(op string, err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, repository.ErrDuplicate, err)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: %w", op, repository.ErrReferenced, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

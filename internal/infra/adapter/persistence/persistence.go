// Package persistence picks the repository implementations for the configured driver.
package persistence

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/adapter/persistence/sqlite"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

// Repositories bundles the repositories the use cases need.
type Repositories struct {
	Articles   repository.ArticleRepository
	Categories repository.CategoryRepository
}

// New returns the repositories for driver. Postgres statements go through q,
// normally the circuit breaker wrapping database; SQLite uses database directly.
func New(driver string, database *sql.DB, q postgres.Queryer) Repositories {
	if driver == db.DriverSQLite {
		x := sqlx.NewDb(database, db.DriverSQLite)
		return Repositories{
			Articles:   sqlite.NewArticleRepo(x),
			Categories: sqlite.NewCategoryRepo(x),
		}
	}
	if q == nil {
		q = database
	}
	return Repositories{
		Articles:   postgres.NewArticleRepo(q),
		Categories: postgres.NewCategoryRepo(q),
	}
}

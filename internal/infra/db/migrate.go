package db

import (
	"context"
	"database/sql"
	"fmt"
)

// postgresSchema creates the categories and articles tables.
// articles.category_id uses ON DELETE RESTRICT so a referenced category can never
// disappear even if the application guard is bypassed.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    slug       TEXT NOT NULL,
    icon       TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// 名前は大文字小文字を区別せず一意
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower ON categories (lower(name))`,
	`CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories (slug, id)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id           BIGSERIAL PRIMARY KEY,
    slug         TEXT NOT NULL UNIQUE,
    title        TEXT NOT NULL,
    snippet      TEXT NOT NULL,
    body         TEXT NOT NULL,
    category_id  BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    author       TEXT NOT NULL DEFAULT '',
    image_url    TEXT NOT NULL DEFAULT '',
    image_hint   TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'Draft' CHECK (status IN ('Published', 'Draft')),
    publish_date TIMESTAMPTZ NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// 一覧の ORDER BY publish_date DESC, id ASC 用
	`CREATE INDEX IF NOT EXISTS idx_articles_publish_date ON articles (publish_date DESC, id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles (category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles (status)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    slug       TEXT NOT NULL,
    icon       TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_lower ON categories (name COLLATE NOCASE)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_slug ON categories (slug, id)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    slug         TEXT NOT NULL UNIQUE,
    title        TEXT NOT NULL,
    snippet      TEXT NOT NULL,
    body         TEXT NOT NULL,
    category_id  INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    author       TEXT NOT NULL DEFAULT '',
    image_url    TEXT NOT NULL DEFAULT '',
    image_hint   TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'Draft' CHECK (status IN ('Published', 'Draft')),
    publish_date DATETIME NOT NULL,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_publish_date ON articles (publish_date DESC, id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles (category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles (status)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS articles`,
	`DROP TABLE IF EXISTS categories`,
}

// MigrateUp creates the schema for driver. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	stmts := postgresSchema
	if driver == DriverSQLite {
		stmts = sqliteSchema
	}
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate up: statement %d: %w", i+1, err)
		}
	}
	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all articles and categories.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}

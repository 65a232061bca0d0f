package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

func newMockDB(t *testing.T, cfg Config) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewDB(conn, cfg), mock
}

func testConfig(name string) Config {
	return Config{
		Name:                name,
		ConsecutiveFailures: 3,
		MaxRequests:         1,
		Timeout:             50 * time.Millisecond,
	}
}

/* ───────── pass-through ───────── */

func TestDB_PassesThrough(t *testing.T) {
	d, mock := newMockDB(t, testConfig("pass"))

	mock.ExpectQuery(`SELECT id FROM categories`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := d.QueryContext(context.Background(), "SELECT id FROM categories")
	require.NoError(t, err)
	n := 0
	for rows.Next() {
		n++
	}
	require.NoError(t, rows.Close())
	assert.Equal(t, 2, n)

	res, err := d.ExecContext(context.Background(), "DELETE FROM categories WHERE id = $1", int64(2))
	require.NoError(t, err)
	affected, _ := res.RowsAffected()
	assert.Equal(t, int64(1), affected)

	assert.Equal(t, gobreaker.StateClosed, d.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ───────── tripping & recovery ───────── */

func TestDB_OpensAfterConsecutiveFailures(t *testing.T) {
	d, mock := newMockDB(t, testConfig("trip"))
	ctx := context.Background()

	for range 3 {
		mock.ExpectQuery(`SELECT 1`).WillReturnError(errDown)
	}
	for range 3 {
		_, err := d.QueryContext(ctx, "SELECT 1")
		require.ErrorIs(t, err, errDown)
	}
	require.Equal(t, gobreaker.StateOpen, d.State())
	assert.Equal(t, 2.0, testutil.ToFloat64(state.WithLabelValues("trip")))

	// open: the database is not touched
	_, err := d.ExecContext(ctx, "UPDATE articles SET title = $1", "x")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 1.0, testutil.ToFloat64(rejections.WithLabelValues("trip")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_HalfOpenSuccessCloses(t *testing.T) {
	d, mock := newMockDB(t, testConfig("recover"))
	ctx := context.Background()

	for range 3 {
		mock.ExpectExec(`INSERT`).WillReturnError(errDown)
		_, _ = d.ExecContext(ctx, "INSERT INTO categories (name) VALUES ($1)", "World")
	}
	require.Equal(t, gobreaker.StateOpen, d.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, d.State())

	mock.ExpectExec(`INSERT`).WillReturnResult(sqlmock.NewResult(1, 1))
	_, err := d.ExecContext(ctx, "INSERT INTO categories (name) VALUES ($1)", "World")
	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, d.State())
	assert.Equal(t, 0.0, testutil.ToFloat64(state.WithLabelValues("recover")))
}

func TestDB_SuccessResetsConsecutiveCount(t *testing.T) {
	d, mock := newMockDB(t, testConfig("interleaved"))
	ctx := context.Background()

	for range 4 {
		mock.ExpectQuery(`SELECT 1`).WillReturnError(errDown)
		mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"x"}).AddRow(1))
	}
	for range 4 {
		_, _ = d.QueryContext(ctx, "SELECT 1")
		rows, err := d.QueryContext(ctx, "SELECT 1")
		require.NoError(t, err)
		_ = rows.Close()
	}
	assert.Equal(t, gobreaker.StateClosed, d.State())
}

func TestDB_IsSuccessfulIgnoresExpectedErrors(t *testing.T) {
	cfg := testConfig("classified")
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, sql.ErrNoRows)
	}
	d, mock := newMockDB(t, cfg)

	for range 5 {
		mock.ExpectExec(`UPDATE`).WillReturnError(sql.ErrNoRows)
		_, err := d.ExecContext(context.Background(), "UPDATE categories SET name = $1", "x")
		require.ErrorIs(t, err, sql.ErrNoRows)
	}
	assert.Equal(t, gobreaker.StateClosed, d.State())
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()
	assert.Equal(t, "database", cfg.Name)
	assert.Equal(t, uint32(5), cfg.ConsecutiveFailures)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

/* ───────── statement kind ───────── */

func TestStatementKind(t *testing.T) {
	tests := map[string]string{
		"SELECT * FROM articles":      "select",
		"  insert into articles (x)":  "insert",
		"UPDATE articles SET x = 1":   "update",
		"DELETE FROM categories":      "delete",
		"WITH c AS (SELECT 1) SELECT": "with",
		"CREATE TABLE t (id int)":     "other",
		"":                            "unknown",
		"SELECT\n  id\nFROM articles": "select",
	}
	for q, want := range tests {
		assert.Equal(t, want, statementKind(q), q)
	}
}

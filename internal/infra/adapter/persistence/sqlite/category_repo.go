package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

const categoryColumns = "id, name, slug, icon, created_at, updated_at"

// CategoryRepo implements the CategoryRepository interface using SQLite.
type CategoryRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewCategoryRepo(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db, now: time.Now}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := repo.db.SelectContext(ctx, &rows, "SELECT "+categoryColumns+" FROM categories ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return repo.getOne(ctx, "Get", "SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
}

// GetBySlug returns the oldest category with slug. Slugs are derived from
// names and are not unique on their own.
func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.getOne(ctx, "GetBySlug",
		"SELECT "+categoryColumns+" FROM categories WHERE slug = ? ORDER BY id ASC LIMIT 1", slug)
}

func (repo *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	var row categoryRow
	if err := repo.db.GetContext(ctx, &row, query, arg); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row.toEntity(), nil
}

// ExistsByName compares names case-insensitively. NOCASE folds ASCII only.
func (repo *CategoryRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE name = ? COLLATE NOCASE AND id <> ?)", name, excludeID)
	if err != nil {
		return false, fmt.Errorf("ExistsByName: %w", err)
	}
	return exists, nil
}

func (repo *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM categories"); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	now := repo.now().UTC()
	res, err := repo.db.ExecContext(ctx,
		"INSERT INTO categories (name, slug, icon, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		category.Name, category.Slug, category.Icon, now, now)
	if err != nil {
		return mapWriteError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}
	category.ID = id
	category.CreatedAt, category.UpdatedAt = now, now
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	now := repo.now().UTC()
	res, err := repo.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, slug = ?, icon = ?, updated_at = ? WHERE id = ?",
		category.Name, category.Slug, category.Icon, now, category.ID)
	if err != nil {
		return mapWriteError("Update", err)
	}
	if err := requireOneRow("Update", res); err != nil {
		return err
	}
	category.UpdatedAt = now
	return nil
}

// Delete fails with repository.ErrReferenced while articles still point at the category.
func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return mapWriteError("Delete", err)
	}
	return requireOneRow("Delete", res)
}

package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

const categoryColumns = `id, name, slug, icon, created_at, updated_at`

type CategoryRepo struct {
	db Queryer
}

func NewCategoryRepo(db Queryer) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func scanCategory(rs rowScanner) (*entity.Category, error) {
	var c entity.Category
	if err := rs.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return repo.getOne(ctx, "Get", `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
}

// GetBySlug returns the oldest category with slug. Slugs are not unique.
func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.getOne(ctx, "GetBySlug",
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1 ORDER BY id ASC LIMIT 1`, slug)
}

func (repo *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	rows, err := repo.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	c, err := scanCategory(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: Scan: %w", op, err)
	}
	return c, rows.Err()
}

func (repo *CategoryRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM categories WHERE lower(name) = lower($1) AND id <> $2)`
	var exists bool
	if _, err := queryOne(ctx, repo.db, query, []any{name, excludeID}, &exists); err != nil {
		return false, fmt.Errorf("ExistsByName: %w", err)
	}
	return exists, nil
}

func (repo *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if _, err := queryOne(ctx, repo.db, `SELECT COUNT(*) FROM categories`, nil, &count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	const query = `
INSERT INTO categories (name, slug, icon)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	args := []any{category.Name, category.Slug, category.Icon}
	if _, err := queryOne(ctx, repo.db, query, args, &category.ID, &category.CreatedAt, &category.UpdatedAt); err != nil {
		return mapWriteError("Create", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	const query = `
UPDATE categories SET
       name       = $1,
       slug       = $2,
       icon       = $3,
       updated_at = now()
WHERE id = $4
RETURNING updated_at`
	args := []any{category.Name, category.Slug, category.Icon, category.ID}
	found, err := queryOne(ctx, repo.db, query, args, &category.UpdatedAt)
	if err != nil {
		return mapWriteError("Update", err)
	}
	if !found {
		return fmt.Errorf("Update: %w", repository.ErrNotFound)
	}
	return nil
}

func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("Delete", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNotFound)
	}
	return nil
}

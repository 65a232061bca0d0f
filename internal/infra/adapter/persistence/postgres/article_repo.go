package postgres

import (
	"context"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

const articleColumns = `a.id, a.slug, a.title, a.snippet, a.body, a.category_id, a.author,
       a.image_url, a.image_hint, a.status, a.publish_date, a.created_at, a.updated_at`

type ArticleRepo struct {
	db           Queryer
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db Queryer) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticle(rs rowScanner, extra ...any) (*entity.Article, error) {
	var a entity.Article
	dest := append([]any{
		&a.ID, &a.Slug, &a.Title, &a.Snippet, &a.Body, &a.CategoryID, &a.Author,
		&a.ImageURL, &a.ImageHint, &a.Status, &a.PublishDate, &a.CreatedAt, &a.UpdatedAt,
	}, extra...)
	if err := rs.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListPaginated retrieves one page of articles with their category name and slug.
// Ties on publish_date are broken by id so pages never overlap.
func (repo *ArticleRepo) ListPaginated(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]repository.ArticleWithCategory, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter, "a")
	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s, c.name, c.slug
FROM articles a
INNER JOIN categories c ON c.id = a.category_id
%s
ORDER BY a.publish_date DESC, a.id ASC
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithCategory, 0, limit)
	for rows.Next() {
		var item repository.ArticleWithCategory
		item.Article, err = scanArticle(rows, &item.CategoryName, &item.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// Count returns the number of articles matching filter.
func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter, "")
	var count int64
	if _, err := queryOne(ctx, repo.db, "SELECT COUNT(*) FROM articles "+whereClause, args, &count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles a WHERE a.id = $1 LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	article, err := scanArticle(rows)
	if err != nil {
		return nil, fmt.Errorf("Get: Scan: %w", err)
	}
	return article, rows.Err()
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `, c.name, c.slug
FROM articles a
INNER JOIN categories c ON c.id = a.category_id
WHERE a.slug = $1
LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var item repository.ArticleWithCategory
	item.Article, err = scanArticle(rows, &item.CategoryName, &item.CategorySlug)
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: Scan: %w", err)
	}
	return &item, rows.Err()
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`
	var exists bool
	if _, err := queryOne(ctx, repo.db, query, []any{slug, excludeID}, &exists); err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE category_id = $1)`
	var exists bool
	if _, err := queryOne(ctx, repo.db, query, []any{categoryID}, &exists); err != nil {
		return false, fmt.Errorf("ExistsByCategory: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (slug, title, snippet, body, category_id, author, image_url, image_hint, status, publish_date)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, created_at, updated_at`
	args := []any{
		article.Slug, article.Title, article.Snippet, article.Body, article.CategoryID,
		article.Author, article.ImageURL, article.ImageHint, string(article.Status), article.PublishDate,
	}
	if _, err := queryOne(ctx, repo.db, query, args, &article.ID, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return mapWriteError("Create", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       slug        = $1,
       title       = $2,
       snippet     = $3,
       body        = $4,
       category_id = $5,
       author      = $6,
       image_url   = $7,
       image_hint  = $8,
       status      = $9,
       updated_at  = now()
WHERE id = $10
RETURNING updated_at`
	args := []any{
		article.Slug, article.Title, article.Snippet, article.Body, article.CategoryID,
		article.Author, article.ImageURL, article.ImageHint, string(article.Status), article.ID,
	}
	found, err := queryOne(ctx, repo.db, query, args, &article.UpdatedAt)
	if err != nil {
		return mapWriteError("Update", err)
	}
	if !found {
		return fmt.Errorf("Update: %w", repository.ErrNotFound)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNotFound)
	}
	return nil
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

const articleColumns = `a.id, a.slug, a.title, a.snippet, a.body, a.category_id, a.author,
       a.image_url, a.image_hint, a.status, a.publish_date, a.created_at, a.updated_at`

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct {
	db           *sqlx.DB
	queryBuilder *ArticleQueryBuilder
	now          func() time.Time
}

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sqlx.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
		now:          time.Now,
	}
}

// ListPaginated retrieves one page of articles joined with their category.
func (repo *ArticleRepo) ListPaginated(ctx context.Context, filter repository.ArticleFilter, offset, limit int) ([]repository.ArticleWithCategory, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter, "a")
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT %s, c.name AS category_name, c.slug AS category_slug
FROM articles a
INNER JOIN categories c ON c.id = a.category_id
%s
ORDER BY a.publish_date DESC, a.id ASC
LIMIT ? OFFSET ?`, articleColumns, whereClause)

	var rows []articleRow
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}

	result := make([]repository.ArticleWithCategory, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].withCategory())
	}
	return result, nil
}

func (repo *ArticleRepo) Count(ctx context.Context, filter repository.ArticleFilter) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filter, "")
	var count int64
	if err := repo.db.GetContext(ctx, &count, repo.db.Rebind("SELECT COUNT(*) FROM articles "+whereClause), args...); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	var row articleRow
	err := repo.db.GetContext(ctx, &row, "SELECT "+articleColumns+" FROM articles a WHERE a.id = ? LIMIT 1", id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: %w", err)
	}
	return row.toEntity(), nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `, c.name AS category_name, c.slug AS category_slug
FROM articles a
INNER JOIN categories c ON c.id = a.category_id
WHERE a.slug = ?
LIMIT 1`
	var row articleRow
	if err := repo.db.GetContext(ctx, &row, query, slug); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	out := row.withCategory()
	return &out, nil
}

func (repo *ArticleRepo) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE slug = ? AND id <> ?)", slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("ExistsBySlug: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) ExistsByCategory(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE category_id = ?)", categoryID)
	if err != nil {
		return false, fmt.Errorf("ExistsByCategory: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	now := repo.now().UTC()
	row := newArticleRow(article)
	row.CreatedAt, row.UpdatedAt = now, now

	res, err := repo.db.NamedExecContext(ctx, `
INSERT INTO articles (slug, title, snippet, body, category_id, author, image_url, image_hint, status, publish_date, created_at, updated_at)
VALUES (:slug, :title, :snippet, :body, :category_id, :author, :image_url, :image_hint, :status, :publish_date, :created_at, :updated_at)`, row)
	if err != nil {
		return mapWriteError("Create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}

	article.ID = id
	article.CreatedAt, article.UpdatedAt = now, now
	return nil
}

// Update rewrites the editable columns. publish_date and created_at are not touched.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	row := newArticleRow(article)
	row.UpdatedAt = repo.now().UTC()

	res, err := repo.db.NamedExecContext(ctx, `
UPDATE articles
SET slug = :slug, title = :title, snippet = :snippet, body = :body, category_id = :category_id,
    author = :author, image_url = :image_url, image_hint = :image_hint, status = :status,
    updated_at = :updated_at
WHERE id = :id`, row)
	if err != nil {
		return mapWriteError("Update", err)
	}
	if err := requireOneRow("Update", res); err != nil {
		return err
	}
	article.UpdatedAt = row.UpdatedAt
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return mapWriteError("Delete", err)
	}
	return requireOneRow("Delete", res)
}

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/repository"
)

// articleRow mirrors the articles table. The category columns are only
// populated by queries that join categories.
type articleRow struct {
	ID           int64     `db:"id"`
	Slug         string    `db:"slug"`
	Title        string    `db:"title"`
	Snippet      string    `db:"snippet"`
	Body         string    `db:"body"`
	CategoryID   int64     `db:"category_id"`
	Author       string    `db:"author"`
	ImageURL     string    `db:"image_url"`
	ImageHint    string    `db:"image_hint"`
	Status       string    `db:"status"`
	PublishDate  time.Time `db:"publish_date"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	CategoryName string    `db:"category_name"`
	CategorySlug string    `db:"category_slug"`
}

func newArticleRow(a *entity.Article) articleRow {
	return articleRow{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Snippet:     a.Snippet,
		Body:        a.Body,
		CategoryID:  a.CategoryID,
		Author:      a.Author,
		ImageURL:    a.ImageURL,
		ImageHint:   a.ImageHint,
		Status:      string(a.Status),
		PublishDate: a.PublishDate.UTC(),
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	}
}

func (r *articleRow) toEntity() *entity.Article {
	return &entity.Article{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Snippet:     r.Snippet,
		Body:        r.Body,
		CategoryID:  r.CategoryID,
		Author:      r.Author,
		ImageURL:    r.ImageURL,
		ImageHint:   r.ImageHint,
		Status:      entity.ArticleStatus(r.Status),
		PublishDate: r.PublishDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *articleRow) withCategory() repository.ArticleWithCategory {
	return repository.ArticleWithCategory{
		Article:      r.toEntity(),
		CategoryName: r.CategoryName,
		CategorySlug: r.CategorySlug,
	}
}

type categoryRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *categoryRow) toEntity() *entity.Category {
	return &entity.Category{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		Icon:      r.Icon,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
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

// requireOneRow reports repository.ErrNotFound when res touched no row.
func requireOneRow(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: RowsAffected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}

package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleFilter narrows article listings. Zero values mean "no filter".
type ArticleFilter struct {
	CategoryID int64
	Status     entity.ArticleStatus
}

// ArticleWithCategory represents an article along with its category's name and slug.
type ArticleWithCategory struct {
	Article      *entity.Article
	CategoryName string
	CategorySlug string
}

type ArticleRepository interface {
	// ListPaginated returns one page of articles ordered by publish_date DESC, id ASC.
	// Parameters:
	//   - offset: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	ListPaginated(ctx context.Context, filter ArticleFilter, offset, limit int) ([]ArticleWithCategory, error)
	// Count returns the number of articles matching filter.
	// This is used for calculating pagination metadata (total pages, etc.).
	Count(ctx context.Context, filter ArticleFilter) (int64, error)
	// Get returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetBySlug returns the article and its category, or (nil, nil) if not found.
	GetBySlug(ctx context.Context, slug string) (*ArticleWithCategory, error)
	// ExistsBySlug reports whether an article other than excludeID holds slug.
	// excludeID 0 excludes nothing.
	ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error)
	// ExistsByCategory reports whether any article references categoryID.
	ExistsByCategory(ctx context.Context, categoryID int64) (bool, error)
	// Create assigns ID, CreatedAt and UpdatedAt on success.
	// Returns ErrDuplicate if the slug is already taken.
	Create(ctx context.Context, article *entity.Article) error
	// Update persists every mutable field. PublishDate and CreatedAt are left untouched.
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
}

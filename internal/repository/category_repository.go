package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

type CategoryRepository interface {
	// List returns all categories in insertion order.
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	// GetBySlug returns the oldest category holding slug, or (nil, nil).
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	// ExistsByName compares names case-insensitively. excludeID 0 excludes nothing.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	// Create returns ErrDuplicate if the name collides.
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete returns ErrReferenced if articles still point at the category.
	Delete(ctx context.Context, id int64) error
}

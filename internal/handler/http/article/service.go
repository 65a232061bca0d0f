package article

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

// Service is the subset of the article use cases the handlers call.
type Service interface {
	List(ctx context.Context, q artUC.ListQuery) (*artUC.PaginatedResult, error)
	CheckSlugUnique(ctx context.Context, slug string, excludeID int64) (bool, error)
	GetPublished(ctx context.Context, slug string) (*repository.ArticleWithCategory, error)
	GetForEdit(ctx context.Context, id int64) (*repository.ArticleWithCategory, error)
	Create(ctx context.Context, in artUC.Input) (*entity.Article, error)
	Update(ctx context.Context, id int64, in artUC.Input) (*entity.Article, error)
	Delete(ctx context.Context, id int64) error
}

var _ Service = (*artUC.Service)(nil)

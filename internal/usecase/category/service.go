package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/revalidate"
)

// Service provides category management use cases.
// It handles business logic for category operations and delegates persistence to the repositories.
type Service struct {
	Repo        repository.CategoryRepository
	Articles    repository.ArticleRepository
	Invalidator revalidate.Invalidator // nil disables revalidation
	// NotifyTimeout bounds revalidation after a write; 0 means revalidate.DefaultNotifyTimeout.
	NotifyTimeout time.Duration
}

// List retrieves all categories in insertion order.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	cats, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []*entity.Category{}
	}
	return cats, nil
}

// Get returns a category by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

// IsInUse reports whether any article references the category.
func (s *Service) IsInUse(ctx context.Context, id int64) (bool, error) {
	used, err := s.Articles.ExistsByCategory(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check category usage: %w", err)
	}
	return used, nil
}

// Add creates a category. The slug is derived from the name.
// Returns ErrCategoryExists if the name is taken in any letter case.
func (s *Service) Add(ctx context.Context, in Input) (*entity.Category, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "category.Add")
	defer span.End()

	start := time.Now()
	cat, keys, err := s.add(ctx, in)
	s.finish(ctx, span, "create", start, err, keys)
	return cat, err
}

func (s *Service) add(ctx context.Context, in Input) (*entity.Category, []revalidate.Key, error) {
	in, slug, err := in.check()
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.Repo.ExistsByName(ctx, in.Name, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, nil, ErrCategoryExists
	}

	cat := &entity.Category{Name: in.Name, Slug: slug, Icon: in.Icon}
	if err := s.Repo.Create(ctx, cat); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, ErrCategoryExists.Wrap(err)
		}
		return nil, nil, fmt.Errorf("create category: %w", err)
	}
	return cat, surfaceKeys(cat.Slug), nil
}

// Update renames a category and re-derives its slug.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Category, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "category.Update", trace.WithAttributes(attribute.Int64("category.id", id)))
	defer span.End()

	start := time.Now()
	cat, keys, err := s.update(ctx, id, in)
	s.finish(ctx, span, "update", start, err, keys)
	return cat, err
}

func (s *Service) update(ctx context.Context, id int64, in Input) (*entity.Category, []revalidate.Key, error) {
	if id <= 0 {
		return nil, nil, ErrInvalidCategoryID
	}
	in, slug, err := in.check()
	if err != nil {
		return nil, nil, err
	}

	old, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get category: %w", err)
	}
	if old == nil {
		return nil, nil, ErrCategoryNotFound
	}

	exists, err := s.Repo.ExistsByName(ctx, in.Name, id)
	if err != nil {
		return nil, nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, nil, ErrCategoryExists
	}

	updated := *old
	updated.Name, updated.Slug, updated.Icon = in.Name, slug, in.Icon
	if err := s.Repo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, nil, ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, nil, ErrCategoryExists.Wrap(err)
		}
		return nil, nil, fmt.Errorf("update category: %w", err)
	}

	// Article cards carry the category name, so every listing may be stale.
	keys := append(surfaceKeys(updated.Slug),
		revalidate.ArticleListing(""),
		revalidate.ArticleListing(old.Slug),
		revalidate.AdminArticles(),
	)
	return &updated, keys, nil
}

// Delete removes a category that no article references.
// Returns ErrCategoryInUse, and changes nothing, while articles still point at it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.GetTracer().Start(ctx, "category.Delete", trace.WithAttributes(attribute.Int64("category.id", id)))
	defer span.End()

	start := time.Now()
	keys, err := s.delete(ctx, id)
	s.finish(ctx, span, "delete", start, err, keys)
	return err
}

func (s *Service) delete(ctx context.Context, id int64) ([]revalidate.Key, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	used, err := s.IsInUse(ctx, id)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, ErrCategoryInUse
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, repository.ErrReferenced):
			return nil, ErrCategoryInUse.Wrap(err)
		}
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return surfaceKeys(cat.Slug), nil
}

// surfaceKeys lists the views that show the category set or filter by slug.
func surfaceKeys(slug string) []revalidate.Key {
	return []revalidate.Key{
		revalidate.CategoryListing(),
		revalidate.AdminCategories(),
		revalidate.ArticleForm(),
		revalidate.ArticleListing(slug),
	}
}

func (s *Service) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error, keys []revalidate.Key) {
	metrics.RecordMutation("category", op, err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, entity.KindOf(err).String())
		return
	}
	revalidate.Notify(ctx, s.Invalidator, s.NotifyTimeout, logging.FromContext(ctx), op+"_category", keys)
}

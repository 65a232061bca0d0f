package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/revalidate"
)

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repositories.
type Service struct {
	Repo        repository.ArticleRepository
	Categories  repository.CategoryRepository
	Invalidator revalidate.Invalidator // nil disables revalidation
	PageSize    int                    // 0 means pagination.DefaultPageSize
	Now         func() time.Time       // nil means time.Now
	// NotifyTimeout bounds revalidation after a write; 0 means revalidate.DefaultNotifyTimeout.
	NotifyTimeout time.Duration
}

// ListQuery selects one page of the article listing.
type ListQuery struct {
	Page         int                  // values below 1 mean page 1
	CategorySlug string               // unknown slugs are ignored
	Status       entity.ArticleStatus // empty means every status
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithCategory
	Pagination pagination.Metadata
	// CategorySlug is the filter that was actually applied, "" when unfiltered.
	CategorySlug string
	// Degraded is set when storage failed and the page was replaced by an empty one.
	Degraded bool
}

// List returns one page of articles, newest first. It never fails.
//
// A category slug that matches no category does not fail the request: the
// listing falls back to all articles. Pages past the end are empty, and
// TotalPages is at least 1 even for an empty set. A failing category lookup
// also falls back to all articles; a failing count or page query yields an
// empty page marked Degraded.
func (s *Service) List(ctx context.Context, q ListQuery) (*PaginatedResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.List")
	defer span.End()
	start := time.Now()
	defer func() { pagination.RecordDuration("service", time.Since(start).Seconds()) }()

	logger := logging.FromContext(ctx)
	params := pagination.Params{Page: q.Page, Limit: s.pageSize()}.WithDefaults(pagination.DefaultConfig())
	filter := repository.ArticleFilter{Status: q.Status}

	applied := ""
	if q.CategorySlug != "" {
		cat, err := s.Categories.GetBySlug(ctx, q.CategorySlug)
		switch {
		case err != nil:
			pagination.RecordError("category")
			pagination.RecordFallback()
			span.RecordError(err)
			logger.Warn("category lookup failed, listing unfiltered",
				slog.String("category", q.CategorySlug), slog.Any("error", err))
		case cat == nil:
			pagination.RecordFallback()
			logger.Debug("unknown category slug, listing unfiltered",
				slog.String("category", q.CategorySlug))
		default:
			filter.CategoryID = cat.ID
			applied = cat.Slug
		}
	}
	span.SetAttributes(
		attribute.Int("page", params.Page),
		attribute.String("category", applied),
	)

	degraded := func(stage string, err error) *PaginatedResult {
		pagination.RecordError(stage)
		span.RecordError(err)
		logger.Error("article listing degraded to empty",
			slog.String("stage", stage), slog.Int("page", params.Page), slog.Any("error", err))
		return &PaginatedResult{
			Data:         []repository.ArticleWithCategory{},
			Pagination:   pagination.NewMetadata(params, 0),
			CategorySlug: applied,
			Degraded:     true,
		}
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return degraded("count", fmt.Errorf("count articles: %w", err)), nil
	}

	meta := pagination.NewMetadata(params, total)
	articles := []repository.ArticleWithCategory{}
	// past the last page there is nothing to fetch, and huge page numbers never reach the query
	if params.Page <= meta.TotalPages {
		rows, err := s.Repo.ListPaginated(ctx, filter, pagination.CalculateOffset(params.Page, params.Limit), params.Limit)
		if err != nil {
			return degraded("page", fmt.Errorf("list articles paginated: %w", err)), nil
		}
		if rows != nil {
			articles = rows
		}
	}

	return &PaginatedResult{
		Data:         articles,
		Pagination:   meta,
		CategorySlug: applied,
	}, nil
}

// CheckSlugUnique reports whether slug is free. excludeID lets an article keep its own slug;
// pass 0 to exclude nothing.
func (s *Service) CheckSlugUnique(ctx context.Context, slug string, excludeID int64) (bool, error) {
	exists, err := s.Repo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return !exists, nil
}

// GetPublished returns a published article by slug for the public site.
// Drafts are reported as not found.
func (s *Service) GetPublished(ctx context.Context, slug string) (*repository.ArticleWithCategory, error) {
	if slug == "" {
		return nil, ErrArticleNotFound
	}
	found, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if found == nil || !found.Article.IsPublished() {
		return nil, ErrArticleNotFound
	}
	return found, nil
}

// GetForEdit returns an article by ID for the admin editor, drafts included.
func (s *Service) GetForEdit(ctx context.Context, id int64) (*repository.ArticleWithCategory, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	out := &repository.ArticleWithCategory{Article: art}
	cat, err := s.Categories.Get(ctx, art.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat != nil {
		out.CategoryName = cat.Name
		out.CategorySlug = cat.Slug
	}
	return out, nil
}

// Create validates in, stores a new article with PublishDate set to now and
// revalidates the listings and the detail page it appears on.
func (s *Service) Create(ctx context.Context, in Input) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Create")
	defer span.End()

	start := time.Now()
	art, keys, err := s.create(ctx, in)
	s.finish(ctx, span, "create", start, err, keys)
	return art, err
}

func (s *Service) create(ctx context.Context, in Input) (*entity.Article, []revalidate.Key, error) {
	in, err := in.check()
	if err != nil {
		return nil, nil, err
	}

	cat, err := s.requireCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, nil, err
	}

	unique, err := s.CheckSlugUnique(ctx, in.Slug, 0)
	if err != nil {
		return nil, nil, err
	}
	if !unique {
		return nil, nil, ErrSlugTaken
	}

	art := &entity.Article{PublishDate: s.now()}
	in.apply(art)

	if err := s.Repo.Create(ctx, art); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, nil, ErrSlugTaken.Wrap(err)
		case errors.Is(err, repository.ErrReferenced):
			return nil, nil, ErrUnknownCategory.Wrap(err)
		}
		return nil, nil, fmt.Errorf("create article: %w", err)
	}

	return art, placementKeys(art.Slug, cat.Slug), nil
}

// Update replaces every editable field of the article. The slug must not be held
// by another article. PublishDate is preserved.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Update", trace.WithAttributes(attribute.Int64("article.id", id)))
	defer span.End()

	start := time.Now()
	art, keys, err := s.update(ctx, id, in)
	s.finish(ctx, span, "update", start, err, keys)
	return art, err
}

func (s *Service) update(ctx context.Context, id int64, in Input) (*entity.Article, []revalidate.Key, error) {
	if id <= 0 {
		return nil, nil, ErrInvalidArticleID
	}
	in, err := in.check()
	if err != nil {
		return nil, nil, err
	}

	old, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get article: %w", err)
	}
	if old == nil {
		return nil, nil, ErrArticleNotFound
	}

	newCat, err := s.requireCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, nil, err
	}

	unique, err := s.CheckSlugUnique(ctx, in.Slug, id)
	if err != nil {
		return nil, nil, err
	}
	if !unique {
		return nil, nil, ErrSlugTaken
	}

	updated := *old
	in.apply(&updated)

	if err := s.Repo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, nil, ErrArticleNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, nil, ErrSlugTaken.Wrap(err)
		case errors.Is(err, repository.ErrReferenced):
			return nil, nil, ErrUnknownCategory.Wrap(err)
		}
		return nil, nil, fmt.Errorf("update article: %w", err)
	}

	keys := placementKeys(updated.Slug, newCat.Slug)
	if old.Slug != updated.Slug {
		keys = append(keys, revalidate.ArticleDetail(old.Slug))
	}
	if old.CategoryID != updated.CategoryID {
		oldCat, err := s.Categories.Get(ctx, old.CategoryID)
		if err != nil {
			// The write is done; fall back to the unfiltered listing only.
			logging.FromContext(ctx).Warn("previous category lookup failed",
				slog.Int64("category_id", old.CategoryID), slog.Any("error", err))
		} else if oldCat != nil {
			keys = append(keys, revalidate.ArticleListing(oldCat.Slug))
		}
	}
	return &updated, keys, nil
}

// Delete removes the article and revalidates every view it was shown on.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Delete", trace.WithAttributes(attribute.Int64("article.id", id)))
	defer span.End()

	start := time.Now()
	keys, err := s.delete(ctx, id)
	s.finish(ctx, span, "delete", start, err, keys)
	return err
}

func (s *Service) delete(ctx context.Context, id int64) ([]revalidate.Key, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("delete article: %w", err)
	}

	catSlug := ""
	cat, err := s.Categories.Get(ctx, art.CategoryID)
	if err != nil {
		logging.FromContext(ctx).Warn("category lookup after delete failed",
			slog.Int64("category_id", art.CategoryID), slog.Any("error", err))
	} else if cat != nil {
		catSlug = cat.Slug
	}
	return placementKeys(art.Slug, catSlug), nil
}

// requireCategory loads the category an article points at. A missing
// category is a validation failure on categoryId.
func (s *Service) requireCategory(ctx context.Context, id int64) (*entity.Category, error) {
	cat, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrUnknownCategory
	}
	return cat, nil
}

// placementKeys lists the views an article with slug in categorySlug appears on.
func placementKeys(slug, categorySlug string) []revalidate.Key {
	keys := []revalidate.Key{
		revalidate.ArticleListing(""),
		revalidate.ArticleDetail(slug),
		revalidate.AdminArticles(),
	}
	if categorySlug != "" {
		keys = append(keys, revalidate.ArticleListing(categorySlug))
	}
	return keys
}

// finish records the outcome of a write and, on success, revalidates keys.
func (s *Service) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error, keys []revalidate.Key) {
	metrics.RecordMutation("article", op, err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, entity.KindOf(err).String())
		return
	}
	revalidate.Notify(ctx, s.Invalidator, s.NotifyTimeout, logging.FromContext(ctx), op+"_article", keys)
}

func (s *Service) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return pagination.DefaultPageSize
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

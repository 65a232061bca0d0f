package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/retry"
)

const statsJobName = "stats"

// ArticleCounter counts articles matching a filter.
type ArticleCounter interface {
	Count(ctx context.Context, filter repository.ArticleFilter) (int64, error)
}

// CategoryCounter counts categories.
type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// PoolStats is satisfied by *sql.DB.
type PoolStats interface {
	Stats() sql.DBStats
}

// StatsJob copies content counts and pool statistics into the Prometheus gauges.
type StatsJob struct {
	Articles   ArticleCounter
	Categories CategoryCounter
	Pool       PoolStats // nil skips the pool gauges
	Retry      retry.Config // zero value means retry.DBConfig()
	Logger     *slog.Logger
}

// Run performs one refresh. Each count is retried with backoff; the gauges are
// only updated when every count succeeded.
func (j *StatsJob) Run(ctx context.Context) error {
	start := time.Now()
	err := j.run(ctx)
	recordRun(statsJobName, time.Since(start).Seconds(), err)
	return err
}

func (j *StatsJob) run(ctx context.Context) error {
	if j.Pool != nil {
		metrics.UpdateDBPoolStats(j.Pool.Stats())
	}

	cfg := j.Retry
	if cfg.MaxAttempts < 1 {
		cfg = retry.DBConfig()
	}
	var published, draft, categories int64
	err := retry.WithBackoff(ctx, cfg, func() error {
		var err error
		if published, err = j.Articles.Count(ctx, repository.ArticleFilter{Status: entity.StatusPublished}); err != nil {
			return fmt.Errorf("count published articles: %w", err)
		}
		if draft, err = j.Articles.Count(ctx, repository.ArticleFilter{Status: entity.StatusDraft}); err != nil {
			return fmt.Errorf("count draft articles: %w", err)
		}
		if categories, err = j.Categories.Count(ctx); err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.UpdateArticlesTotal(published, draft)
	metrics.UpdateCategoriesTotal(categories)
	j.Logger.Debug("stats refreshed",
		slog.Int64("published", published),
		slog.Int64("draft", draft),
		slog.Int64("categories", categories))
	return nil
}

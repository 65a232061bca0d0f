package http

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/repository"
)

// ArticleCounter counts articles matching a filter.
type ArticleCounter interface {
	Count(ctx context.Context, filter repository.ArticleFilter) (int64, error)
}

// CategoryCounter counts categories.
type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	Articles   int64 `json:"articleCount" example:"15"`
	Published  int64 `json:"publishedCount" example:"11"`
	Drafts     int64 `json:"draftCount" example:"4"`
	Categories int64 `json:"categoryCount" example:"4"`
}

// StatsHandler serves the admin dashboard counts. It sits under /admin and
// relies on the session gate.
type StatsHandler struct {
	Articles   ArticleCounter
	Categories CategoryCounter
}

// ServeHTTP 管理ダッシュボード統計
// @Summary      管理ダッシュボード統計
// @Description  記事数（公開・下書き別）とカテゴリ数を返します
// @Tags         admin
// @Security     SessionCookie
// @Produce      json
// @Success      200 {object} StatsResponse
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/stats [get]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var out StatsResponse
	eg, ctx := errgroup.WithContext(r.Context())
	eg.Go(func() (err error) {
		out.Articles, err = h.Articles.Count(ctx, repository.ArticleFilter{})
		return err
	})
	eg.Go(func() (err error) {
		out.Published, err = h.Articles.Count(ctx, repository.ArticleFilter{Status: entity.StatusPublished})
		return err
	})
	eg.Go(func() (err error) {
		out.Categories, err = h.Categories.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		respond.Failure(w, r, err)
		return
	}
	out.Drafts = max(out.Articles-out.Published, 0)

	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, http.StatusOK, out)
}

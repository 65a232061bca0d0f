package article

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pagecache"
	"newsdesk/internal/handler/http/responsewriter"
	"newsdesk/internal/infra/cache"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/revalidate"
	artUC "newsdesk/internal/usecase/article"
)

// ListHandler serves the public, paginated listing of published articles.
type ListHandler struct {
	Svc    Service
	Cache  *cache.PageCache // nil disables caching
	Logger *slog.Logger
}

// ServeHTTP 公開記事一覧取得
// @Summary      公開記事一覧取得（ページネーション対応）
// @Description  公開済みの記事を新しい順に取得します。存在しないカテゴリを指定した場合は全件を返します。
// @Tags         articles
// @Produce      json
// @Param        page      query    int     false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        category  query    string  false  "カテゴリslug"
// @Success      200 {object} ListResponse "ページネーション付き記事一覧"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	page := pagination.ParsePage(r.URL.Query().Get("page"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	logger.Debug("list articles", slog.Int("page", page), slog.String("category", category))

	key := "/articles?" + url.Values{"page": {strconv.Itoa(page)}, "category": {category}}.Encode()
	deps := []revalidate.Key{revalidate.ArticleListing(category), revalidate.ArticleListing("")}

	rw := responsewriter.Wrap(w)
	pagecache.Serve(rw, r, h.Cache, key, deps, func(ctx context.Context) (any, error) {
		res, err := h.Svc.List(ctx, artUC.ListQuery{Page: page, CategorySlug: category, Status: entity.StatusPublished})
		if err != nil {
			return nil, err
		}
		out := toListResponse(res.Data, res.Pagination, res.CategorySlug)
		if res.Degraded {
			return pagecache.NoStore{Value: out}, nil
		}
		return out, nil
	})

	pagination.RecordRequest(rw.StatusCode(), page)
	pagination.RecordDuration("handler", time.Since(start).Seconds())
}

// GetHandler serves a published article by slug.
type GetHandler struct {
	Svc   Service
	Cache *cache.PageCache
}

// ServeHTTP 公開記事詳細取得
// @Summary      公開記事詳細取得
// @Description  slugで指定された公開済み記事を取得します。下書きは404になります。
// @Tags         articles
// @Produce      json
// @Param        slug path string true "記事slug"
// @Success      200 {object} DTO "記事詳細"
// @Failure      404 {object} respond.ErrorBody "記事が存在しない"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	// a category rename changes the embedded category name
	deps := []revalidate.Key{revalidate.ArticleDetail(slug), revalidate.CategoryListing()}

	pagecache.Serve(w, r, h.Cache, "/articles/"+slug, deps, func(ctx context.Context) (any, error) {
		found, err := h.Svc.GetPublished(ctx, slug)
		if err != nil {
			return nil, err
		}
		return fromRow(*found), nil
	})
}

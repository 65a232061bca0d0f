package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/infra/cache"
)

// Register registers all article-related HTTP handlers with the given mux.
// Routes under /admin rely on the session gate installed around the mux.
func Register(mux *http.ServeMux, svc Service, pages *cache.PageCache, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{Svc: svc, Cache: pages, Logger: logger})
	mux.Handle("GET /articles/{slug}", GetHandler{Svc: svc, Cache: pages})

	mux.Handle("GET /admin/articles", AdminListHandler{svc})
	mux.Handle("GET /admin/articles/slug-available", SlugAvailableHandler{svc})
	mux.Handle("GET /admin/articles/{id}", AdminGetHandler{svc})
	mux.Handle("POST /admin/articles", CreateHandler{svc})
	mux.Handle("PUT /admin/articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /admin/articles/{id}", DeleteHandler{svc})
}

// Package pagecache serves rendered JSON pages through the shared page cache.
//
// A page is rendered once and then served from memory until one of the
// revalidation keys it depends on is marked stale by a write.
package pagecache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/infra/cache"
	"newsdesk/internal/revalidate"
)

const contentTypeJSON = "application/json"

// RenderFunc produces the value to encode for a cache miss.
type RenderFunc func(ctx context.Context) (any, error)

// NoStore wraps a rendered value that is served once and kept out of the cache,
// e.g. a fallback page produced while storage is failing.
type NoStore struct{ Value any }

// Serve writes the page stored under key, rendering and storing it on a miss.
// deps are the revalidation keys the rendered page depends on.
// A nil cache renders every request.
func Serve(w http.ResponseWriter, r *http.Request, c *cache.PageCache, key string, deps []revalidate.Key, render RenderFunc) {
	if c == nil {
		v, err := render(r.Context())
		if err != nil {
			respond.Failure(w, r, err)
			return
		}
		if ns, ok := v.(NoStore); ok {
			v = ns.Value
		}
		respond.JSON(w, http.StatusOK, v)
		return
	}

	if page, ok := c.Get(key); ok {
		w.Header().Set("X-Cache", "HIT")
		write(w, r, page)
		return
	}

	// ticket is taken before rendering so a write racing the render keeps the result out of the cache
	ticket := c.Begin(deps...)
	v, err := render(r.Context())
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	if ns, ok := v.(NoStore); ok {
		w.Header().Set("X-Cache", "MISS")
		w.Header().Set("Cache-Control", "no-store")
		respond.JSON(w, http.StatusOK, ns.Value)
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		respond.Failure(w, r, fmt.Errorf("encode page: %w", err))
		return
	}
	body = append(body, '\n')

	page, _ := c.Set(key, body, contentTypeJSON, ticket)
	w.Header().Set("X-Cache", "MISS")
	write(w, r, page)
}

func write(w http.ResponseWriter, r *http.Request, page cache.Page) {
	etag := `"` + page.ETag + `"`
	h := w.Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", "no-cache")

	if match(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", page.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Body)
}

// match reports whether an If-None-Match header names etag. Weak validators compare equal.
func match(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

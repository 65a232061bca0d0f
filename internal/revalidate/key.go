// Package revalidate names the cached views that a write can make stale and
// delivers those names to whatever holds the cached copies.
package revalidate

import (
	"net/url"
	"sort"
	"strings"
)

// Kind identifies a family of cached views.
type Kind string

const (
	// KindArticleListing is the public article list. ID is the category slug
	// it was filtered by, or "" for the unfiltered list.
	KindArticleListing Kind = "article-listing"
	// KindArticleDetail is a single public article page. ID is the article slug.
	KindArticleDetail Kind = "article-detail"
	// KindAdminArticles is the admin article table.
	KindAdminArticles Kind = "admin-articles"
	// KindAdminCategories is the admin category table.
	KindAdminCategories Kind = "admin-categories"
	// KindCategoryListing is the public category list.
	KindCategoryListing Kind = "category-listing"
	// KindArticleForm is the admin article editor (its category picker).
	KindArticleForm Kind = "article-form"
)

// Key names one cached view.
type Key struct {
	Kind Kind
	ID   string
}

// String renders k as "kind" or "kind:id".
func (k Key) String() string {
	if k.ID == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + ":" + k.ID
}

// ArticleListing names the public listing filtered by categorySlug, or the
// unfiltered listing when categorySlug is "".
func ArticleListing(categorySlug string) Key {
	return Key{Kind: KindArticleListing, ID: categorySlug}
}

// ArticleDetail names the public page of the article with slug.
func ArticleDetail(slug string) Key {
	return Key{Kind: KindArticleDetail, ID: slug}
}

// AdminArticles names the admin article table.
func AdminArticles() Key { return Key{Kind: KindAdminArticles} }

// AdminCategories names the admin category table.
func AdminCategories() Key { return Key{Kind: KindAdminCategories} }

// CategoryListing names the public category list.
func CategoryListing() Key { return Key{Kind: KindCategoryListing} }

// ArticleForm names the admin article editor.
func ArticleForm() Key { return Key{Kind: KindArticleForm} }

// Path returns the site path that renders the view named by k, for
// frontends that revalidate by URL.
//
//	Path(ArticleListing(""))         // "/"
//	Path(ArticleListing("world"))    // "/?category=world"
//	Path(ArticleDetail("article-2")) // "/articles/article-2"
func (k Key) Path() string {
	switch k.Kind {
	case KindArticleListing:
		if k.ID == "" {
			return "/"
		}
		return "/?" + url.Values{"category": {k.ID}}.Encode()
	case KindArticleDetail:
		return "/articles/" + url.PathEscape(k.ID)
	case KindAdminArticles:
		return "/admin/articles"
	case KindAdminCategories:
		return "/admin/categories"
	case KindCategoryListing:
		// カテゴリ一覧はトップページのナビゲーションに表示される
		return "/"
	case KindArticleForm:
		return "/admin/articles/new"
	}
	return "/"
}

// Paths maps keys to site paths, dropping repeats and keeping first-seen order.
func Paths(keys []Key) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		p := k.Path()
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Dedupe returns keys without repeats, sorted for stable logging.
func Dedupe(keys []Key) []Key {
	seen := make(map[Key]struct{}, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Strings renders keys for log attributes.
func Strings(keys []Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, ",")
}

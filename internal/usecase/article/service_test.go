package article_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/webhook"
	"newsdesk/internal/repository"
	"newsdesk/internal/revalidate"
	artUC "newsdesk/internal/usecase/article"
)

type fixture struct {
	repo *stubRepo
	cats *stubCategories
	rec  *recorder
	svc  *artUC.Service
}

func newFixture(t *testing.T, seeded bool) *fixture {
	t.Helper()
	cats := newCategories("Technology", "Politics", "World", "Business")
	repo := newStub(cats)
	if seeded {
		seed(repo)
	}
	rec := &recorder{}
	return &fixture{
		repo: repo,
		cats: cats,
		rec:  rec,
		svc: &artUC.Service{
			Repo:        repo,
			Categories:  cats,
			Invalidator: rec,
			PageSize:    10,
			Now:         func() time.Time { return fixedNow },
		},
	}
}

func validInput() artUC.Input {
	return artUC.Input{
		Title:      "Breaking News",
		Slug:       "breaking-news",
		Snippet:    "Something happened.",
		Body:       "<p>Details follow.</p>",
		CategoryID: 1,
		Author:     "Author A",
		ImageURL:   "https://picsum.photos/seed/99/600/400",
		Status:     entity.StatusPublished,
	}
}

func slugsOf(items []repository.ArticleWithCategory) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Article.Slug)
	}
	return out
}

/* ───────── List ───────── */

func TestService_List_FifteenArticles(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	first, err := f.svc.List(ctx, artUC.ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Data, 10)
	assert.Equal(t, int64(15), first.Pagination.Total)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.Equal(t, 1, first.Pagination.Page)
	assert.Equal(t, "article-1", first.Data[0].Article.Slug)
	assert.Equal(t, "article-10", first.Data[9].Article.Slug)
	assert.Equal(t, "technology", first.Data[0].CategorySlug)

	second, err := f.svc.List(ctx, artUC.ListQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Data, 5)
	assert.Equal(t, "article-11", second.Data[0].Article.Slug)
	assert.Equal(t, 2, second.Pagination.TotalPages)

	beyond, err := f.svc.List(ctx, artUC.ListQuery{Page: 3})
	require.NoError(t, err)
	assert.NotNil(t, beyond.Data)
	assert.Empty(t, beyond.Data)
}

func TestService_List_PageBelowOneIsFirstPage(t *testing.T) {
	f := newFixture(t, true)

	want, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1})
	require.NoError(t, err)

	for _, page := range []int{0, -1, -100} {
		got, err := f.svc.List(context.Background(), artUC.ListQuery{Page: page})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Pagination.Page, "page %d", page)
		assert.Equal(t, slugsOf(want.Data), slugsOf(got.Data), "page %d", page)
	}
}

func TestService_List_PagesReconstructSet(t *testing.T) {
	for _, size := range []int{1, 3, 4, 10, 15, 20} {
		f := newFixture(t, true)
		f.svc.PageSize = size

		res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1})
		require.NoError(t, err)

		seen := map[string]bool{}
		for p := 1; p <= res.Pagination.TotalPages; p++ {
			page, err := f.svc.List(context.Background(), artUC.ListQuery{Page: p})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Data), size)
			for _, slug := range slugsOf(page.Data) {
				assert.False(t, seen[slug], "duplicate %s with size %d", slug, size)
				seen[slug] = true
			}
		}
		assert.Len(t, seen, 15, "size %d", size)
	}
}

func TestService_List_CategoryFilter(t *testing.T) {
	f := newFixture(t, true)

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1, CategorySlug: "politics"})
	require.NoError(t, err)
	assert.Equal(t, "politics", res.CategorySlug)
	assert.Equal(t, []string{"article-2", "article-6", "article-10", "article-14"}, slugsOf(res.Data))
	assert.Equal(t, 1, res.Pagination.TotalPages)
	for _, it := range res.Data {
		assert.Equal(t, "Politics", it.CategoryName)
	}
}

func TestService_List_UnknownCategoryFailsOpen(t *testing.T) {
	f := newFixture(t, true)

	unfiltered, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1})
	require.NoError(t, err)

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1, CategorySlug: "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "", res.CategorySlug)
	assert.Equal(t, unfiltered.Pagination, res.Pagination)
	assert.Equal(t, slugsOf(unfiltered.Data), slugsOf(res.Data))
}

func TestService_List_StatusFilter(t *testing.T) {
	f := newFixture(t, true)

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1, Status: entity.StatusPublished})
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Pagination.Total)
	for _, it := range res.Data {
		assert.True(t, it.Article.IsPublished(), it.Article.Slug)
	}
}

func TestService_List_EmptySet(t *testing.T) {
	f := newFixture(t, false)

	for _, page := range []int{1, 2} {
		res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: page})
		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Equal(t, 1, res.Pagination.TotalPages)
		assert.Equal(t, int64(0), res.Pagination.Total)
	}
}

func TestService_List_HugePageIsEmpty(t *testing.T) {
	f := newFixture(t, true)

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 922337203685477582})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.Equal(t, int64(15), res.Pagination.Total)
	assert.False(t, res.Pagination.HasNext)
}

func TestService_List_RepositoryErrorDegradesToEmpty(t *testing.T) {
	f := newFixture(t, true)
	f.repo.err = errors.New("connection refused")

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 3})
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Empty(t, res.Data)
	assert.NotNil(t, res.Data)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	assert.Equal(t, int64(0), res.Pagination.Total)
	assert.Equal(t, 3, res.Pagination.Page)
}

func TestService_List_CategoryLookupErrorFailsOpen(t *testing.T) {
	f := newFixture(t, true)
	f.cats.err = errors.New("connection refused")

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1, CategorySlug: "politics"})
	require.NoError(t, err)
	assert.False(t, res.Degraded)
	assert.Equal(t, "", res.CategorySlug)
	assert.Equal(t, int64(15), res.Pagination.Total)
}

/* ───────── Reads ───────── */

func TestService_CheckSlugUnique(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tests := []struct {
		name      string
		slug      string
		excludeID int64
		want      bool
	}{
		{"taken", "article-3", 0, false},
		{"free", "brand-new", 0, true},
		{"own slug excluded", "article-3", 3, true},
		{"held by another", "article-3", 4, false},
		{"case sensitive", "Article-3", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.CheckSlugUnique(ctx, tt.slug, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetPublished(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	got, err := f.svc.GetPublished(ctx, "article-2")
	require.NoError(t, err)
	assert.Equal(t, "Politics", got.CategoryName)

	// article-1 は Draft
	_, err = f.svc.GetPublished(ctx, "article-1")
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = f.svc.GetPublished(ctx, "missing")
	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}

func TestService_GetForEdit(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	got, err := f.svc.GetForEdit(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, got.Article.Status)
	assert.Equal(t, "technology", got.CategorySlug)

	_, err = f.svc.GetForEdit(ctx, 999)
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = f.svc.GetForEdit(ctx, 0)
	assert.ErrorIs(t, err, artUC.ErrInvalidArticleID)
}

/* ───────── Create ───────── */

func TestService_Create(t *testing.T) {
	f := newFixture(t, false)

	art, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), art.ID)
	assert.True(t, art.PublishDate.Equal(fixedNow))

	for _, k := range []revalidate.Key{
		revalidate.ArticleListing(""),
		revalidate.ArticleListing("technology"),
		revalidate.ArticleDetail("breaking-news"),
		revalidate.AdminArticles(),
	} {
		assert.True(t, f.rec.has(k), "missing key %s", k)
	}
}

func TestService_Create_ThenListByCategory(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.CategoryID = 3

	_, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	res, err := f.svc.List(context.Background(), artUC.ListQuery{Page: 1, CategorySlug: "world"})
	require.NoError(t, err)
	assert.Contains(t, slugsOf(res.Data), "breaking-news")
	// 最新の記事が先頭
	assert.Equal(t, "breaking-news", res.Data[0].Article.Slug)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*artUC.Input)
		field  string
	}{
		{"empty title", func(in *artUC.Input) { in.Title = "   " }, "title"},
		{"title too long", func(in *artUC.Input) { in.Title = strings.Repeat("a", 201) }, "title"},
		{"bad slug", func(in *artUC.Input) { in.Slug = "Bad Slug" }, "slug"},
		{"empty snippet", func(in *artUC.Input) { in.Snippet = "" }, "snippet"},
		{"empty body", func(in *artUC.Input) { in.Body = "<script>alert(1)</script>" }, "body"},
		{"no category", func(in *artUC.Input) { in.CategoryID = 0 }, "categoryId"},
		{"unknown category", func(in *artUC.Input) { in.CategoryID = 99 }, "categoryId"},
		{"bad status", func(in *artUC.Input) { in.Status = "Archived" }, "status"},
		{"bad image url", func(in *artUC.Input) { in.ImageURL = "ftp://example.com/a.png" }, "imageUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			in := validInput()
			tt.mutate(&in)

			_, err := f.svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, entity.KindValidation, entity.KindOf(err))
			assert.Equal(t, tt.field, entity.FieldOf(err))
			assert.Empty(t, f.repo.data)
			assert.Empty(t, f.rec.keys)
		})
	}
}

func TestService_Create_DuplicateSlug(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.Slug = "article-5"

	_, err := f.svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, artUC.ErrSlugTaken)
	assert.Equal(t, entity.KindConflict, entity.KindOf(err))
	assert.Len(t, f.repo.data, 15)
	assert.Empty(t, f.rec.keys)
}

func TestService_Create_StorageUniqueViolation(t *testing.T) {
	f := newFixture(t, false)
	f.repo.createErr = repository.ErrDuplicate

	_, err := f.svc.Create(context.Background(), validInput())
	assert.Equal(t, entity.KindConflict, entity.KindOf(err))
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestService_Create_CategoryRemovedConcurrently(t *testing.T) {
	f := newFixture(t, false)
	f.repo.createErr = repository.ErrReferenced

	_, err := f.svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, artUC.ErrUnknownCategory)
	assert.Equal(t, "categoryId", entity.FieldOf(err))
	assert.Empty(t, f.rec.keys)
}

func TestService_Create_SanitizesBody(t *testing.T) {
	f := newFixture(t, false)
	in := validInput()
	in.Body = `<p onclick="x()">Hello</p><script>alert(1)</script>`

	art, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello</p>", art.Body)
}

func TestService_Create_RevalidationFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, false)
	f.rec.err = errors.New("broker down")

	art, err := f.svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotNil(t, f.repo.data[art.ID])
}

func TestService_Create_RateLimitedFrontendDoesNotStallWrite(t *testing.T) {
	var calls atomic.Int32
	frontend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer frontend.Close()

	f := newFixture(t, false)
	f.svc.Invalidator = webhook.New(webhook.Config{URL: frontend.URL, Timeout: 2 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc.NotifyTimeout = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := f.svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestService_Create_NilInvalidator(t *testing.T) {
	f := newFixture(t, false)
	f.svc.Invalidator = nil

	_, err := f.svc.Create(context.Background(), validInput())
	assert.NoError(t, err)
}

/* ───────── Update ───────── */

func TestService_Update_KeepsOwnSlug(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.Slug = "article-2"
	in.CategoryID = 2

	art, err := f.svc.Update(context.Background(), 2, in)
	require.NoError(t, err)
	assert.Equal(t, "Breaking News", art.Title)
	// PublishDate は作成時のまま
	assert.True(t, art.PublishDate.Equal(time.Date(2024, 6, 19, 0, 0, 0, 0, time.UTC)))
}

func TestService_Update_SlugHeldByAnother(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.Slug = "article-3"

	_, err := f.svc.Update(context.Background(), 2, in)
	assert.ErrorIs(t, err, artUC.ErrSlugTaken)
	assert.Equal(t, "article-2", f.repo.data[2].Slug)
	assert.Empty(t, f.rec.keys)
}

func TestService_Update_SlugChangeRevalidatesBoth(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.Slug = "renamed"
	in.CategoryID = 2

	_, err := f.svc.Update(context.Background(), 2, in)
	require.NoError(t, err)
	assert.True(t, f.rec.has(revalidate.ArticleDetail("article-2")))
	assert.True(t, f.rec.has(revalidate.ArticleDetail("renamed")))
	assert.False(t, f.rec.has(revalidate.ArticleListing("technology")))
}

func TestService_Update_CategoryChangeRevalidatesBoth(t *testing.T) {
	f := newFixture(t, true)
	in := validInput()
	in.Slug = "article-2"
	in.CategoryID = 4

	_, err := f.svc.Update(context.Background(), 2, in)
	require.NoError(t, err)
	assert.True(t, f.rec.has(revalidate.ArticleListing("politics")))
	assert.True(t, f.rec.has(revalidate.ArticleListing("business")))
	assert.True(t, f.rec.has(revalidate.ArticleListing("")))
	assert.True(t, f.rec.has(revalidate.AdminArticles()))
}

func TestService_Update_Errors(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.svc.Update(ctx, 999, validInput())
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = f.svc.Update(ctx, 0, validInput())
	assert.ErrorIs(t, err, artUC.ErrInvalidArticleID)

	in := validInput()
	in.CategoryID = 42
	_, err = f.svc.Update(ctx, 2, in)
	assert.ErrorIs(t, err, artUC.ErrUnknownCategory)
}

/* ───────── Delete ───────── */

func TestService_Delete(t *testing.T) {
	f := newFixture(t, true)

	require.NoError(t, f.svc.Delete(context.Background(), 6))
	assert.Nil(t, f.repo.data[6])
	assert.Len(t, f.repo.data, 14)

	for _, k := range []revalidate.Key{
		revalidate.ArticleListing(""),
		revalidate.ArticleListing("politics"),
		revalidate.ArticleDetail("article-6"),
		revalidate.AdminArticles(),
	} {
		assert.True(t, f.rec.has(k), "missing key %s", k)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	f := newFixture(t, true)

	err := f.svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)
	assert.Len(t, f.repo.data, 15)
	assert.Empty(t, f.rec.keys)

	err = f.svc.Delete(context.Background(), -1)
	assert.Equal(t, entity.KindValidation, entity.KindOf(err))
}

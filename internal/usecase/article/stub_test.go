package article_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/revalidate"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ ArticleRepository
type stubRepo struct {
	data   map[int64]*entity.Article
	cats   *stubCategories
	nextID int64
	err    error // 強制的にエラーを返したいとき用
	// createErr is returned by Create only (e.g. a racing unique violation).
	createErr error
}

func newStub(cats *stubCategories) *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, cats: cats, nextID: 1}
}

func (s *stubRepo) matching(f repository.ArticleFilter) []*entity.Article {
	var out []*entity.Article
	for _, a := range s.data {
		if f.CategoryID != 0 && a.CategoryID != f.CategoryID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishDate.Equal(out[j].PublishDate) {
			return out[i].PublishDate.After(out[j].PublishDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *stubRepo) withCategory(a *entity.Article) repository.ArticleWithCategory {
	cp := *a
	out := repository.ArticleWithCategory{Article: &cp}
	if c := s.cats.data[a.CategoryID]; c != nil {
		out.CategoryName, out.CategorySlug = c.Name, c.Slug
	}
	return out
}

func (s *stubRepo) ListPaginated(_ context.Context, f repository.ArticleFilter, offset, limit int) ([]repository.ArticleWithCategory, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := s.matching(f)
	var out []repository.ArticleWithCategory
	for i := offset; i < len(all) && i < offset+limit; i++ {
		out = append(out, s.withCategory(all[i]))
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, f repository.ArticleFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.matching(f))), nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a := s.data[id]
	if a == nil {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*repository.ArticleWithCategory, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Slug == slug {
			out := s.withCategory(a)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ExistsBySlug(_ context.Context, slug string, excludeID int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, a := range s.data {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) ExistsByCategory(_ context.Context, categoryID int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, a := range s.data {
		if a.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	a.ID = s.nextID
	s.nextID++
	a.CreatedAt, a.UpdatedAt = a.PublishDate, a.PublishDate
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *a
	s.data[a.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// インメモリ CategoryRepository
type stubCategories struct {
	data   map[int64]*entity.Category
	nextID int64
	err    error
}

func newCategories(names ...string) *stubCategories {
	s := &stubCategories{data: map[int64]*entity.Category{}, nextID: 1}
	for _, n := range names {
		_ = s.Create(context.Background(), &entity.Category{Name: n, Slug: entity.Slugify(n)})
	}
	return s
}

func (s *stubCategories) List(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for id := int64(1); id < s.nextID; id++ {
		if c, ok := s.data[id]; ok {
			out = append(out, c)
		}
	}
	return out, s.err
}

func (s *stubCategories) Get(_ context.Context, id int64) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[id], nil
}

func (s *stubCategories) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	for id := int64(1); id < s.nextID; id++ {
		if c, ok := s.data[id]; ok && c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCategories) ExistsByName(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, c := range s.data {
		if strings.EqualFold(c.Name, name) && c.ID != excludeID {
			return true, s.err
		}
	}
	return false, s.err
}

func (s *stubCategories) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func (s *stubCategories) Create(_ context.Context, c *entity.Category) error {
	if s.err != nil {
		return s.err
	}
	c.ID = s.nextID
	s.nextID++
	s.data[c.ID] = c
	return nil
}

func (s *stubCategories) Update(_ context.Context, c *entity.Category) error {
	if s.err != nil {
		return s.err
	}
	s.data[c.ID] = c
	return nil
}

func (s *stubCategories) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

// recorder captures revalidation keys.
type recorder struct {
	mu   sync.Mutex
	keys []revalidate.Key
	err  error
}

func (r *recorder) MarkStale(_ context.Context, keys ...revalidate.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, keys...)
	return r.err
}

func (r *recorder) has(k revalidate.Key) bool {
	for _, got := range r.keys {
		if got == k {
			return true
		}
	}
	return false
}

var fixedNow = time.Date(2024, 6, 21, 9, 0, 0, 0, time.UTC)

// seed fills repo with the fifteen sample articles across four categories.
// Article i (0-based) is in category i%4, published 2024-06-(20-i), Draft when i%4 == 0.
func seed(repo *stubRepo) {
	for i := 0; i < 15; i++ {
		status := entity.StatusPublished
		if i%4 == 0 {
			status = entity.StatusDraft
		}
		a := &entity.Article{
			Slug:        "article-" + strconv.Itoa(i+1),
			Title:       "Headline News Story " + strconv.Itoa(i+1),
			Snippet:     "snippet",
			Body:        "<p>body</p>",
			CategoryID:  int64(i%4 + 1),
			Status:      status,
			PublishDate: time.Date(2024, 6, 20-i, 0, 0, 0, 0, time.UTC),
		}
		_ = repo.Create(context.Background(), a)
	}
}

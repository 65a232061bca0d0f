// Package seed loads demo categories and articles from YAML.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

//go:embed seed.yaml
var defaultFixture []byte

// Fixture is the YAML document layout.
type Fixture struct {
	Categories []CategoryFixture `yaml:"categories"`
	Articles   []ArticleFixture  `yaml:"articles"`
}

type CategoryFixture struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type ArticleFixture struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Snippet     string    `yaml:"snippet"`
	Body        string    `yaml:"body"`
	Category    string    `yaml:"category"` // category name
	Author      string    `yaml:"author"`
	ImageURL    string    `yaml:"imageUrl"`
	ImageHint   string    `yaml:"imageHint"`
	Status      string    `yaml:"status"`
	PublishDate time.Time `yaml:"publishDate"`
}

// Result counts what Apply did.
type Result struct {
	CategoriesCreated int
	CategoriesSkipped int
	ArticlesCreated   int
	ArticlesSkipped   int
}

// Default returns the embedded demo fixture.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// Read parses a fixture from r.
func Read(r io.Reader) (*Fixture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a fixture. Every article must name a category
// that the fixture declares.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	declared := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		if entity.Slugify(c.Name) == "" {
			return nil, fmt.Errorf("category %q: %w", c.Name, entity.ErrInvalidInput)
		}
		declared[c.Name] = true
	}
	for _, a := range f.Articles {
		if err := entity.ValidateSlug("slug", a.Slug); err != nil {
			return nil, fmt.Errorf("article %q: %w", a.Slug, err)
		}
		if !declared[a.Category] {
			return nil, fmt.Errorf("article %q: undeclared category %q: %w", a.Slug, a.Category, entity.ErrInvalidInput)
		}
		if !entity.ArticleStatus(a.Status).Valid() {
			return nil, fmt.Errorf("article %q: status %q: %w", a.Slug, a.Status, entity.ErrInvalidInput)
		}
	}
	return &f, nil
}

// Apply inserts whatever is missing. Categories are matched by name
// (case-insensitively) and articles by slug, so Apply can be rerun.
func Apply(ctx context.Context, f *Fixture, categories repository.CategoryRepository, articles repository.ArticleRepository, logger *slog.Logger) (Result, error) {
	var res Result

	for _, c := range f.Categories {
		exists, err := categories.ExistsByName(ctx, c.Name, 0)
		if err != nil {
			return res, fmt.Errorf("check category %q: %w", c.Name, err)
		}
		if exists {
			res.CategoriesSkipped++
			continue
		}
		cat := &entity.Category{Name: c.Name, Slug: entity.Slugify(c.Name), Icon: c.Icon}
		if err := categories.Create(ctx, cat); err != nil {
			return res, fmt.Errorf("create category %q: %w", c.Name, err)
		}
		res.CategoriesCreated++
		logger.Debug("seeded category", slog.String("name", cat.Name), slog.Int64("id", cat.ID))
	}

	// 名前 → ID の対応表 (既存カテゴリも含む)
	ids := make(map[string]int64, len(f.Categories))
	for _, c := range f.Categories {
		cat, err := categories.GetBySlug(ctx, entity.Slugify(c.Name))
		if err != nil {
			return res, fmt.Errorf("resolve category %q: %w", c.Name, err)
		}
		if cat == nil {
			return res, fmt.Errorf("resolve category %q: %w", c.Name, entity.ErrNotFound)
		}
		ids[c.Name] = cat.ID
	}

	for _, a := range f.Articles {
		exists, err := articles.ExistsBySlug(ctx, a.Slug, 0)
		if err != nil {
			return res, fmt.Errorf("check article %q: %w", a.Slug, err)
		}
		if exists {
			res.ArticlesSkipped++
			continue
		}
		art := &entity.Article{
			Slug:        a.Slug,
			Title:       a.Title,
			Snippet:     a.Snippet,
			Body:        a.Body,
			CategoryID:  ids[a.Category],
			Author:      a.Author,
			ImageURL:    a.ImageURL,
			ImageHint:   a.ImageHint,
			Status:      entity.ArticleStatus(a.Status),
			PublishDate: a.PublishDate,
		}
		if err := articles.Create(ctx, art); err != nil {
			return res, fmt.Errorf("create article %q: %w", a.Slug, err)
		}
		res.ArticlesCreated++
	}

	logger.Info("seed applied",
		slog.Int("categories_created", res.CategoriesCreated),
		slog.Int("categories_skipped", res.CategoriesSkipped),
		slog.Int("articles_created", res.ArticlesCreated),
		slog.Int("articles_skipped", res.ArticlesSkipped))
	return res, nil
}

// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Category, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusPublished ArticleStatus = "Published"
	StatusDraft     ArticleStatus = "Draft"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	return s == StatusPublished || s == StatusDraft
}

// Article represents a news article managed through the admin panel.
// PublishDate is set once at creation and never edited afterwards.
type Article struct {
	ID          int64
	Slug        string
	Title       string
	Snippet     string
	Body        string
	CategoryID  int64
	Author      string
	ImageURL    string
	ImageHint   string
	Status      ArticleStatus
	PublishDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished reports whether the article is visible on the public site.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

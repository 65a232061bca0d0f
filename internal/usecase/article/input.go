package article

import (
	"strings"

	"newsdesk/internal/common/validate"
	"newsdesk/internal/domain/entity"
)

var (
	validator = validate.New()
	sanitizer = validate.NewSanitizer()
)

// Input carries the editable fields of an article for Create and Update.
// ID, PublishDate and the timestamps are never taken from input.
type Input struct {
	Title      string               `json:"title" validate:"required,max=200"`
	Slug       string               `json:"slug" validate:"required,max=200,slug"`
	Snippet    string               `json:"snippet" validate:"required,max=500"`
	Body       string               `json:"body" validate:"required,max=50000"`
	CategoryID int64                `json:"categoryId" validate:"gt=0"`
	Author     string               `json:"author" validate:"max=100"`
	ImageURL   string               `json:"imageUrl" validate:"omitempty,imageurl"`
	ImageHint  string               `json:"imageHint" validate:"max=100"`
	Status     entity.ArticleStatus `json:"status" validate:"required,oneof=Published Draft"`
}

// normalize trims plain fields, strips markup from them and sanitizes the body.
func (in Input) normalize() Input {
	in.Title = sanitizer.Text(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Snippet = sanitizer.Text(in.Snippet)
	in.Body = sanitizer.HTML(in.Body)
	in.Author = sanitizer.Text(in.Author)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ImageHint = sanitizer.Text(in.ImageHint)
	return in
}

// check normalizes and validates in.
func (in Input) check() (Input, error) {
	in = in.normalize()
	if err := validator.Struct(in); err != nil {
		return in, err
	}
	return in, nil
}

func (in Input) apply(a *entity.Article) {
	a.Title = in.Title
	a.Slug = in.Slug
	a.Snippet = in.Snippet
	a.Body = in.Body
	a.CategoryID = in.CategoryID
	a.Author = in.Author
	a.ImageURL = in.ImageURL
	a.ImageHint = in.ImageHint
	a.Status = in.Status
}

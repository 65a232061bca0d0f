// Package article provides HTTP handlers for article-related endpoints.
// It serves the public listing and detail pages through the page cache and
// the admin endpoints that drive the mutation pipeline.
package article

import (
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Title        string    `json:"title" example:"Markets rally after rate decision"`
	Slug         string    `json:"slug" example:"article-1"`
	Snippet      string    `json:"snippet" example:"Stocks closed higher on Tuesday..."`
	Body         string    `json:"body" example:"<p>Stocks closed higher...</p>"`
	CategoryID   int64     `json:"categoryId" example:"4"`
	CategoryName string    `json:"categoryName,omitempty" example:"Business"`
	CategorySlug string    `json:"categorySlug,omitempty" example:"business"`
	Author       string    `json:"author,omitempty" example:"Author B"`
	ImageURL     string    `json:"imageUrl,omitempty" example:"https://picsum.photos/seed/1/600/400"`
	ImageHint    string    `json:"imageHint,omitempty" example:"stock market"`
	Status       string    `json:"status" example:"Published" enums:"Published,Draft"`
	PublishDate  time.Time `json:"publishDate" example:"2024-06-20T00:00:00Z"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-06-20T00:00:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" example:"2024-06-20T00:00:00Z"`
}

// ListResponse is one page of articles.
type ListResponse struct {
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
	// Category is the category filter that was applied, omitted when the listing is unfiltered.
	Category string `json:"category,omitempty" example:"world"`
}

// SlugAvailability is the response of the slug availability check.
type SlugAvailability struct {
	Slug      string `json:"slug" example:"article-16"`
	Available bool   `json:"available" example:"true"`
}

func toDTO(a *entity.Article, categoryName, categorySlug string) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Snippet:      a.Snippet,
		Body:         a.Body,
		CategoryID:   a.CategoryID,
		CategoryName: categoryName,
		CategorySlug: categorySlug,
		Author:       a.Author,
		ImageURL:     a.ImageURL,
		ImageHint:    a.ImageHint,
		Status:       string(a.Status),
		PublishDate:  a.PublishDate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func fromRow(row repository.ArticleWithCategory) DTO {
	return toDTO(row.Article, row.CategoryName, row.CategorySlug)
}

func toListResponse(rows []repository.ArticleWithCategory, meta pagination.Metadata, category string) ListResponse {
	dtos := make([]DTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, fromRow(row))
	}
	return ListResponse{Data: dtos, Pagination: meta, Category: category}
}

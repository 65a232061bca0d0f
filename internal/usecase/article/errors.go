// Package article provides use cases for managing article entities.
// It implements the paginated, category-filtered listing that backs both the public
// site and the admin table, and the validate → persist → revalidate pipeline for writes.
package article

import "newsdesk/internal/domain/entity"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is typically returned when attempting to retrieve, update or delete
	// an article that does not exist in the repository.
	ErrArticleNotFound = &entity.Error{Kind: entity.KindNotFound, Message: "article not found"}

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = &entity.Error{Kind: entity.KindValidation, Field: "id", Message: "invalid article ID"}

	// ErrSlugTaken indicates that another article already uses the requested slug.
	ErrSlugTaken = &entity.Error{
		Kind:    entity.KindConflict,
		Field:   "slug",
		Message: "slug already exists, please choose a unique slug",
	}

	// ErrUnknownCategory indicates that the article references a category that does not exist.
	ErrUnknownCategory = &entity.Error{Kind: entity.KindValidation, Field: "categoryId", Message: "category does not exist"}
)

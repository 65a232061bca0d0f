// Package category provides use cases for managing article categories.
// It implements listing, the in-use guard, and the validate → persist → revalidate
// pipeline for adding, renaming and deleting categories.
package category

import "newsdesk/internal/domain/entity"

// Sentinel errors for category use case operations.
var (
	// ErrCategoryNotFound indicates that the requested category was not found.
	ErrCategoryNotFound = &entity.Error{Kind: entity.KindNotFound, Message: "category not found"}

	// ErrInvalidCategoryID indicates that the provided category ID is not positive.
	ErrInvalidCategoryID = &entity.Error{Kind: entity.KindValidation, Field: "id", Message: "invalid category ID"}

	// ErrCategoryExists indicates that another category already has the same name,
	// compared case-insensitively.
	ErrCategoryExists = &entity.Error{
		Kind:    entity.KindConflict,
		Field:   "name",
		Message: "a category with this name already exists",
	}

	// ErrCategoryInUse indicates that articles still reference the category.
	ErrCategoryInUse = &entity.Error{
		Kind:    entity.KindPreconditionFailed,
		Message: "cannot delete category because it is currently assigned to one or more articles",
	}

	// ErrUnsluggableName indicates a name that produces an empty slug.
	ErrUnsluggableName = &entity.Error{
		Kind:    entity.KindValidation,
		Field:   "name",
		Message: "name must contain at least one letter or digit",
	}
)

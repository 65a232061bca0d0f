// Package repository declares the persistence contracts used by the usecases.
// Implementations live under internal/infra/adapter/persistence.
package repository

import "errors"

var (
	// ErrNotFound is returned by Update and Delete when no row matched.
	ErrNotFound = errors.New("repository: not found")

	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("repository: duplicate key")

	// ErrReferenced is returned when a delete is blocked by a foreign key.
	ErrReferenced = errors.New("repository: row is still referenced")
)

package entity

import (
	"errors"
	"fmt"
)

// Kind classifies an error by what the caller should do about it.
type Kind int

const (
	// KindInternal is anything unexpected: storage failures, bugs, timeouts.
	KindInternal Kind = iota
	// KindValidation means the input was rejected before any write happened.
	KindValidation
	// KindConflict means a uniqueness rule (slug, category name) was violated.
	KindConflict
	// KindNotFound means the target entity does not exist.
	KindNotFound
	// KindPreconditionFailed means the entity exists but cannot be changed in its current state.
	KindPreconditionFailed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindPreconditionFailed:
		return "precondition_failed"
	default:
		return "internal"
	}
}

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = &Error{Kind: KindNotFound, Message: "entity not found"}

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = &Error{Kind: KindValidation, Message: "invalid input"}
)

// Error is a domain error carrying its Kind. Field is set for errors that
// concern a single input field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinel errors by identity of Kind and Message so that a
// wrapped copy created with Wrap still satisfies errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Wrap returns a copy of sentinel e that carries cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Field: e.Field, Message: e.Message, Err: cause}
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// KindOf reports the Kind of err. Errors that carry no kind are Internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// FieldOf returns the offending input field of err, if any.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}

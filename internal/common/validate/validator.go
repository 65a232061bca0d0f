// Package validate wraps go-playground/validator for request and command structs,
// reporting the first failing field as an entity.ValidationError keyed by its JSON name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"newsdesk/internal/domain/entity"
)

// Validator wraps go-playground validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the slug and imageurl tags registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// RegisterValidation only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return entity.ValidateSlug("", fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return entity.ValidateImageURL("", fl.Field().String()) == nil
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the first failure as *entity.ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &entity.ValidationError{Field: fe.Field(), Message: formatFieldError(fe)}
	}
	return fmt.Errorf("validate: %w", err)
}

// formatFieldError formats a single field error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "slug":
		return fmt.Sprintf("%s may only contain lowercase letters, digits and single hyphens", field)
	case "imageurl":
		return fmt.Sprintf("%s must be an http or https URL", field)
	default:
		return fmt.Sprintf("%s failed validation for %s", field, e.Tag())
	}
}

package category

import (
	"newsdesk/internal/common/validate"
	"newsdesk/internal/domain/entity"
)

var (
	validator = validate.New()
	sanitizer = validate.NewSanitizer()
)

// Input represents the editable fields of a category.
type Input struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
	Icon string `json:"icon" validate:"max=50"`
}

// check trims and validates in and returns the slug derived from the name.
func (in Input) check() (Input, string, error) {
	in.Name = sanitizer.Text(in.Name)
	in.Icon = sanitizer.Text(in.Icon)
	if err := validator.Struct(in); err != nil {
		return in, "", err
	}
	slug := entity.Slugify(in.Name)
	if slug == "" {
		return in, "", ErrUnsluggableName
	}
	return in, slug, nil
}

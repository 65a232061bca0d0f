package entity

import "time"

// Category groups articles. Name is unique regardless of letter case;
// Slug is derived from Name and is used as the public filter key.
type Category struct {
	ID        int64
	Name      string
	Slug      string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

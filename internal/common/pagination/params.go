package pagination

import (
	"strconv"
	"strings"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParsePage turns a raw page value into a page number.
// Missing, non-numeric, zero and negative values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// WithDefaults clamps p into a usable range.
func (p Params) WithDefaults(config Config) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = config.PageSize
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	return p
}

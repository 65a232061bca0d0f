// Package pagination provides the page arithmetic, request parsing and response
// envelope shared by the article listings.
package pagination

import (
	pkgconfig "newsdesk/pkg/config"
)

// DefaultPageSize is the number of articles shown per listing page.
const DefaultPageSize = 10

// Config holds pagination configuration settings.
type Config struct {
	PageSize int // Items per page
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{PageSize: DefaultPageSize}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_PAGE_SIZE: Items per page (must be positive)
//
// Falls back to DefaultConfig() if the variable is not set or invalid.
func LoadFromEnv() Config {
	size := pkgconfig.GetEnvInt("PAGINATION_PAGE_SIZE", DefaultPageSize)
	if size < 1 {
		size = DefaultPageSize
	}
	return Config{PageSize: size}
}

package entity

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonAlphaNums = regexp.MustCompile(`[^a-z0-9]+`)
)

// ValidateSlug checks that slug is lowercase alphanumeric words joined by single hyphens.
func ValidateSlug(field, slug string) error {
	if slug == "" {
		return &ValidationError{Field: field, Message: "slug is required"}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{
			Field:   field,
			Message: "slug may only contain lowercase letters, digits and single hyphens",
		}
	}
	return nil
}

// Slugify derives a URL slug from a display name.
// "Science & Tech" becomes "science-tech".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphaNums.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateImageURL validates an optional image URL. The empty string is accepted;
// anything else must be an absolute http or https URL with a host.
func ValidateImageURL(field, rawURL string) error {
	if rawURL == "" {
		return nil
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "URL is malformed"}
	}

	// HTTPまたはHTTPSスキームのみ許可
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	return nil
}

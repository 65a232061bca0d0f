package validate

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user-supplied content before it is stored.
// Both policies are safe for concurrent use once built.
type Sanitizer struct {
	html  *bluemonday.Policy
	plain *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer that keeps user-generated-content markup in
// HTML bodies and strips every tag from plain text fields.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		html:  bluemonday.UGCPolicy(),
		plain: bluemonday.StrictPolicy(),
	}
}

// HTML removes scripts, event handlers and other unsafe markup.
func (s *Sanitizer) HTML(body string) string {
	return strings.TrimSpace(s.html.Sanitize(body))
}

// Text removes all markup and surrounding whitespace. The result is plain
// text, so entities produced by the policy are decoded again.
func (s *Sanitizer) Text(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(text)))
}

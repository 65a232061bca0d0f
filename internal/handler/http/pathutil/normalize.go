package pathutil

import (
	"regexp"
	"strings"
)

type route struct {
	re    *regexp.Regexp
	label string
}

// Dynamic routes and their metric labels, most specific first.
var routes = []route{
	{regexp.MustCompile(`^/admin/articles/\d+$`), "/admin/articles/:id"},
	{regexp.MustCompile(`^/admin/categories/\d+$`), "/admin/categories/:id"},
	{regexp.MustCompile(`^/articles/[a-z0-9]+(?:-[a-z0-9]+)*$`), "/articles/:slug"},
	{regexp.MustCompile(`^/swagger/.+$`), "/swagger/*"},
}

// NormalizePath maps a request path to its route label so ids and slugs do
// not each become a metric series. The query string and a trailing slash
// are ignored; static paths such as /admin/articles/slug-available come
// back unchanged.
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, rt := range routes {
		if rt.re.MatchString(path) {
			return rt.label
		}
	}
	return path
}

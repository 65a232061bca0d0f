package auth

import (
	"path"
	"strings"
)

// AdminPrefix is the route subtree that requires an admin session.
// Everything else (public pages, /auth/*, /health, /metrics, /swagger/) is open.
const AdminPrefix = "/admin"

// RequiresSession reports whether p is under the admin subtree.
// The path is cleaned first so that "/x/../admin/articles" is still gated.
//
//	RequiresSession("/admin")                // true
//	RequiresSession("/admin/articles/3")     // true
//	RequiresSession("/administrator")        // false
//	RequiresSession("/articles")             // false
func RequiresSession(p string) bool {
	clean := path.Clean("/" + p)
	return clean == AdminPrefix || strings.HasPrefix(clean, AdminPrefix+"/")
}

// Package logging configures log/slog for the service.
//
// LOG_FORMAT selects json (default) or text, LOG_LEVEL the minimum level.
// Middleware stores a logger carrying the request id in the request
// context; use cases pick it up with FromContext so their lines correlate
// with the access log:
//
//	logging.FromContext(ctx).Info("article created", slog.String("slug", a.Slug))
package logging

// Package pathutil parses and normalizes request paths.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID means an {id} path segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses r.PathValue("id") for the admin article and category routes.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

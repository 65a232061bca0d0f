package pagination

import "math"

// CalculateOffset returns the row offset of a 1-based page. Pages below 1
// are treated as the first page. The result saturates at math.MaxInt
// instead of wrapping negative.
func CalculateOffset(page, limit int) int {
	if page < 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages is ceil(total/limit), never below 1: an empty
// listing still renders one empty page.
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

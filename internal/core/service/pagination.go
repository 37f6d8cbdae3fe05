package service

import "math"

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

// normalizePaging applies the defaults for absent or non-numeric values
// (which arrive as zero) and caps the page size to bound query cost.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

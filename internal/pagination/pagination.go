// Package pagination holds the page/limit/count contract shared by every
// list endpoint and the client SDK.
package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Meta describes one page of a list result. TotalPages is computed
// server-side; clients consume it as-is.
type Meta struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewMeta builds the metadata for a list result of count total items.
func NewMeta(count, page, limit int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (count + limit - 1) / limit
	}

	return Meta{
		Count:      count,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Normalize clamps page and limit to usable values. Pages are 1-indexed.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// Offset converts a 1-indexed page into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

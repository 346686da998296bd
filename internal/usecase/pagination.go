// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagination builds the pagination envelope for a page request.
// Page numbers are one-based; a non-positive limit falls back to the default page size.
func NewPagination(page, limit int, totalItems int64) Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && totalPages > 0,
	}
}

// DefaultPageSize bounds list responses when the client does not ask for a size.
const DefaultPageSize = 20

// MaxPageSize caps how many items a single page may return.
const MaxPageSize = 100

// NormalizePage clamps raw page/limit query values into usable bounds and
// returns them together with the matching offset.
func NormalizePage(page, limit int) (normalizedPage, normalizedLimit, offset int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit, (page - 1) * limit
}

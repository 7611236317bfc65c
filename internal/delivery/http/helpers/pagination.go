package helpers

import (
	"net/http"
	"strconv"

	"credinta/internal/domain"
)

// Pagination query parameter defaults and limits. The admin search is the
// only paginated surface; the public listings return full result sets.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the query string. Missing,
// malformed, or out-of-range values fall back to the defaults rather than
// erroring; page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     queryInt(q.Get("page"), DefaultPage, 0),
		PageSize: queryInt(q.Get("page_size"), DefaultPageSize, MaxPageSize),
	}
}

// queryInt parses raw as a positive integer, falling back on anything
// invalid. A nonzero max caps the result.
func queryInt(raw string, fallback, max int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// PaginationMeta is the pagination block of paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta derives the metadata for one page of a total-count
// result. TotalPages rounds up; a zero page size yields zero pages.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}

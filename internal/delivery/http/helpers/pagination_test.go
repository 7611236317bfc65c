package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/api/admin/posts/search?q=x", 1, 20},
		{"explicit values", "/api/admin/posts/search?q=x&page=3&page_size=50", 3, 50},
		{"page_size capped", "/api/admin/posts/search?q=x&page_size=500", 1, 100},
		{"garbage falls back", "/api/admin/posts/search?q=x&page=abc&page_size=-2", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ParsePagination(httptest.NewRequest("GET", tt.url, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPageSize, params.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 20, 41)
	assert.Equal(t, 3, meta.TotalPages)

	empty := NewPaginationMeta(1, 0, 10)
	assert.Zero(t, empty.TotalPages)
}

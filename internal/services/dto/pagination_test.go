package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{"exact fit", 20, 1, 10, 2},
		{"partial last page", 23, 3, 10, 3},
		{"single item", 1, 1, 10, 1},
		{"empty", 0, 1, 10, 0},
		{"limit one", 5, 2, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}

func TestPaginationQueryNormalize(t *testing.T) {
	var q PaginationQuery
	q.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)

	q = PaginationQuery{Page: 4, Limit: 25}
	q.Normalize()
	assert.Equal(t, 4, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestNewListResponseNeverNil(t *testing.T) {
	resp := NewListResponse[UserResponse](nil, 0, 1, 10)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

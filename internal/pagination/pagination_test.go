package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/pagination"
)

func TestNewMeta(t *testing.T) {
	type testCase struct {
		name           string
		count          int
		page           int
		limit          int
		wantTotalPages int
	}

	tests := []testCase{
		{name: "ExactMultiple", count: 20, page: 1, limit: 10, wantTotalPages: 2},
		{name: "PartialLastPage", count: 15, page: 2, limit: 10, wantTotalPages: 2},
		{name: "SingleItem", count: 1, page: 1, limit: 10, wantTotalPages: 1},
		{name: "Empty", count: 0, page: 1, limit: 10, wantTotalPages: 0},
		{name: "LimitOne", count: 7, page: 3, limit: 1, wantTotalPages: 7},
		{name: "ZeroLimit", count: 7, page: 1, limit: 0, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.count, tt.page, tt.limit)

			assert.Equal(t, tt.count, meta.Count)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
		})
	}
}

func TestNormalize(t *testing.T) {
	type testCase struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}

	tests := []testCase{
		{name: "Defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "Negative", page: -3, limit: -1, wantPage: 1, wantLimit: 10},
		{name: "Passthrough", page: 4, limit: 25, wantPage: 4, wantLimit: 25},
		{name: "CappedLimit", page: 1, limit: 5000, wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := pagination.Normalize(tt.page, tt.limit)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 10, pagination.Offset(2, 10))
	assert.Equal(t, 45, pagination.Offset(10, 5))
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/pkg/pagination"
)

/*
TestFromRequest covers defaults, lenient parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"non_numeric", "?page=abc&limit=xyz", 1, 10},
		{"negative", "?page=-2&limit=0", 1, 10},
		{"clamped", "?limit=5000", 1, pagination.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/articles"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestNewMeta verifies page math and navigation flags.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		limit   int
		total   int
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"exact_fit", 1, 10, 10, 1, false, false},
		{"first_of_three", 1, 10, 21, 3, true, false},
		{"middle", 2, 10, 21, 3, true, true},
		{"last", 3, 10, 21, 3, false, true},
		{"past_end", 5, 10, 21, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.pages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNextPage)
			assert.Equal(t, tt.hasPrev, meta.HasPrevPage)
			assert.Equal(t, tt.total, meta.TotalItems)
			assert.Equal(t, tt.limit, meta.ItemsPerPage)
		})
	}
}

/*
TestMeta_JSONFieldNames pins the camelCase field names clients depend on.
*/
func TestMeta_JSONFieldNames(t *testing.T) {
	out, err := json.Marshal(pagination.NewMeta(2, 5, 11))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"currentPage": 2,
		"totalPages": 3,
		"totalItems": 11,
		"itemsPerPage": 5,
		"hasNextPage": true,
		"hasPrevPage": true
	}`, string(out))
}

/*
TestOffset covers the (page-1)*limit rule.
*/
func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Offset(1, 10))
	assert.Equal(t, 20, pagination.Offset(3, 10))
	assert.Equal(t, 0, pagination.Offset(0, 10))
}

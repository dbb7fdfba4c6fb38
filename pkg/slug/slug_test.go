// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/beacon/pkg/slug"
)

/*
TestFrom checks accent stripping and hyphen collapsing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Article", "my-article"},
		{"  Café & Crème  ", "cafe-creme"},
		{"Hello---World!!", "hello-world"},
		{"Pendidikan 2024: Update", "pendidikan-2024-update"},
		{"***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestUnique verifies the incrementing suffix on collisions.
*/
func TestUnique(t *testing.T) {
	taken := map[string]struct{}{}
	assert.Equal(t, "my-article", slug.Unique("my-article", taken))

	taken["my-article"] = struct{}{}
	assert.Equal(t, "my-article-1", slug.Unique("my-article", taken))

	taken["my-article-1"] = struct{}{}
	taken["my-article-3"] = struct{}{}
	assert.Equal(t, "my-article-2", slug.Unique("my-article", taken))
}

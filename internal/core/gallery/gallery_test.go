// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/core/gallery"
	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/pkg/optional"
)

func newService(t *testing.T) (*gallery.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return gallery.NewService(sqlx.NewDb(db, database.DriverName)), mock
}

/*
TestCreate_Validation rejects items without a title or an image before any
statement reaches the database.
*/
func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input gallery.Input
		field string
	}{
		{"missing title", gallery.Input{ImageURL: optional.Of("/uploads/gallery/a.jpg")}, "title"},
		{"blank title", gallery.Input{Title: optional.Of("  "), ImageURL: optional.Of("/uploads/gallery/a.jpg")}, "title"},
		{"missing image", gallery.Input{Title: optional.Of("Opening day")}, "image_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newService(t)

			_, err := service.Create(context.Background(), tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestAll_Ordering lists active items newest gallery date first, joined with
their category.
*/
func TestAll_Ordering(t *testing.T) {
	service, mock := newService(t)

	columns := []string{
		"id", "is_active", "created_at", "updated_at", "title", "description", "image_url",
		"category_id", "gallery_date", "order_position", "category_name", "category_slug",
	}
	day := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"LEFT JOIN gallery_categories c ON c.id = t.category_id WHERE t.is_active = $1 ORDER BY t.gallery_date DESC NULLS LAST, t.created_at DESC, t.id DESC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, true, day, day, "Field visit", nil, "/uploads/gallery/b.jpg", 1, day, 0, "Events", "events").
			AddRow(1, true, day, day, "Workshop", nil, "/uploads/gallery/a.jpg", nil, nil, 1, nil, nil))

	items, err := service.All(context.Background(), crud.ActiveOnly)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Field visit", items[0].Title)
	require.NotNil(t, items[0].CategorySlug)
	assert.Equal(t, "events", *items[0].CategorySlug)
	assert.Nil(t, items[1].GalleryDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/core/category"
	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/pkg/optional"
)

var columns = []string{"id", "is_active", "created_at", "updated_at", "name", "slug", "description", "order_position"}

func newService(t *testing.T, kind category.Kind) (*category.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(sqlx.NewDb(db, database.DriverName), kind, logger), mock
}

/*
TestCreate_DerivesSlug fills the slug from the name when it is omitted.
*/
func TestCreate_DerivesSlug(t *testing.T) {
	service, mock := newService(t, category.Article)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO article_categories (name, slug) VALUES ($1, $2) RETURNING id")).
		WithArgs("Giáo Dục & Education", "giao-duc-education").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM article_categories t WHERE t.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, true, time.Now(), time.Now(), "Giáo Dục & Education", "giao-duc-education", nil, 0))

	created, err := service.Create(context.Background(), category.Input{Name: optional.Of("Giáo Dục & Education")})

	require.NoError(t, err)
	assert.Equal(t, "giao-duc-education", created.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestCreate_RequiresName fails before any SQL runs.
*/
func TestCreate_RequiresName(t *testing.T) {
	service, mock := newService(t, category.Article)

	_, err := service.Create(context.Background(), category.Input{Slug: optional.Of("x")})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestDelete_Guard refuses to delete a category still referenced by items.
*/
func TestDelete_Guard(t *testing.T) {
	service, mock := newService(t, category.Article)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM article_categories WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM articles WHERE category_id = $1)")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := service.Delete(context.Background(), 4)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeBadRequest, ae.Code)
	assert.Equal(t, "Cannot delete category with related articles. Please reassign or delete the articles first.", ae.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestDelete_Unused removes a category nothing references.
*/
func TestDelete_Unused(t *testing.T) {
	service, mock := newService(t, category.Gallery)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM gallery_items WHERE category_id = $1)")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM gallery_categories WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestDelete_Missing reports 404 for an unknown category.
*/
func TestDelete_Missing(t *testing.T) {
	service, mock := newService(t, category.Program)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := service.Delete(context.Background(), 9)

	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInput_NormalisesSlug(t *testing.T) {
	changes := category.Input{Slug: optional.Of("  Press Releases ")}.Changes()

	value, ok := changes.Get("slug")
	assert.True(t, ok)
	assert.Equal(t, "press-releases", value)
}

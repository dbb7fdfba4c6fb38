// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leadership_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/core/leadership"
	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

var columns = []string{
	"id", "is_active", "created_at", "updated_at", "name", "position", "bio", "image_url",
	"email", "linkedin_url", "is_highlighted", "order_position",
}

func newService(t *testing.T) (*leadership.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return leadership.NewService(sqlx.NewDb(db, database.DriverName)), mock
}

/*
TestCreate_Highlighted clears the previous highlight in the same transaction.
*/
func TestCreate_Highlighted(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leadership SET is_highlighted = FALSE WHERE id <> $1 AND is_highlighted = TRUE")).
		WithArgs(int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO leadership (name, is_highlighted) VALUES ($1, $2) RETURNING id")).
		WithArgs("Amina Diallo", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, true, time.Now(), time.Now(), "Amina Diallo", nil, nil, nil, nil, nil, true, 0))
	mock.ExpectCommit()

	member, err := service.Create(context.Background(), leadership.Input{
		Name:          optional.Of("Amina Diallo"),
		IsHighlighted: optional.Of(convert.Bool(true)),
	})

	require.NoError(t, err)
	assert.True(t, member.IsHighlighted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestDelete_NoReassignment removes the highlighted member with a single
statement; no other member is promoted.
*/
func TestDelete_NoReassignment(t *testing.T) {
	service, mock := newService(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM leadership WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, service.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.is_highlighted = $1 AND t.is_active = $2")).
		WithArgs(true, true).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := service.Highlighted(context.Background())
	assert.True(t, apperr.IsNotFound(err))
}

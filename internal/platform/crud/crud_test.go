// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

type item struct {
	crud.Base
	Title         string  `db:"title"`
	IsHighlighted bool    `db:"is_highlighted"`
	CategoryName  *string `db:"category_name"`
	CategorySlug  *string `db:"category_slug"`
}

type itemInput struct {
	Title         optional.Value[string]       `json:"title"`
	IsHighlighted optional.Value[convert.Bool] `json:"is_highlighted"`
}

func (input itemInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("is_highlighted", input.IsHighlighted)
	return changes
}

func (input itemInput) ValidateCreate() error {
	if !input.Title.IsSet() {
		return apperr.ValidationError("Title is required")
	}
	return nil
}

var itemColumns = []string{"id", "is_active", "created_at", "updated_at", "title", "is_highlighted"}

func itemRow(rows *sqlmock.Rows, id int64, active bool, title string) *sqlmock.Rows {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return rows.AddRow(id, active, now, now, title, false)
}

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, database.DriverName), mock
}

func programs(db *sqlx.DB) *crud.Table[item] {
	return crud.NewTable[item](db, crud.Spec{
		Table:         "programs",
		Resource:      "Program",
		SearchColumns: []string{"title", "description"},
		Highlight:     true,
	})
}

/*
TestFindAllPaginatedWithSearch_Filters checks that every filter contributes
one placeholder and that search reuses a single argument across columns.
*/
func TestFindAllPaginatedWithSearch_Filters(t *testing.T) {
	db, mock := newMock(t)

	table := crud.NewTable[item](db, crud.Spec{
		Table:         "articles",
		Resource:      "Article",
		CategoryTable: "article_categories",
		SearchColumns: []string{"title", "excerpt"},
		OrderBy:       "t.published_at DESC, t.created_at DESC",
	})

	from := " FROM articles t LEFT JOIN article_categories c ON c.id = t.category_id" +
		" WHERE t.is_active = $1 AND c.slug = $2 AND (t.title ILIKE $3 OR t.excerpt ILIKE $3)"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)"+from)).
		WithArgs(true, "news", "%50\\%%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	columns := append(append([]string{}, itemColumns...), "category_name", "category_slug")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.*, c.name AS category_name, c.slug AS category_slug"+from+
		" ORDER BY t.published_at DESC, t.created_at DESC, t.id DESC LIMIT $4 OFFSET $5")).
		WithArgs(true, "news", "%50\\%%", 5, 5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(6, true, time.Now(), time.Now(), "Fund 50% reached", false, "News", "news"))

	page, err := table.FindAllPaginatedWithSearch(context.Background(), crud.ListQuery{
		Page:       2,
		Limit:      5,
		Visibility: crud.ActiveOnly,
		Category:   crud.ParseCategoryRef("news"),
		Search:     " 50% ",
	})

	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "news", *page.Data[0].CategorySlug)

	meta := page.Meta()
	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFindAllPaginatedWithSearch_CategoryID filters on the foreign key and
applies paging defaults.
*/
func TestFindAllPaginatedWithSearch_CategoryID(t *testing.T) {
	db, mock := newMock(t)
	table := crud.NewTable[item](db, crud.Spec{Table: "articles", Resource: "Article", CategoryTable: "article_categories"})

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.category_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.category_id = $1 ORDER BY t.order_position ASC, t.created_at DESC, t.id DESC LIMIT $2 OFFSET $3")).
		WithArgs(int64(3), 10, 0).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	page, err := table.FindAllPaginatedWithSearch(context.Background(), crud.ListQuery{Category: crud.ParseCategoryRef("3")})

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFindAllPaginated_StableOrder checks that every paginated listing ends its
ORDER BY on the primary key, so rows sharing a timestamp or position cannot
move between pages.
*/
func TestFindAllPaginated_StableOrder(t *testing.T) {
	tests := []struct {
		name    string
		orderBy string
		want    string
	}{
		{"default order", "", " ORDER BY t.order_position ASC, t.created_at DESC, t.id DESC LIMIT $1 OFFSET $2"},
		{"date order", "t.created_at DESC", " ORDER BY t.created_at DESC, t.id DESC LIMIT $1 OFFSET $2"},
		{"already keyed", "t.id ASC", " ORDER BY t.id ASC LIMIT $1 OFFSET $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			table := crud.NewTable[item](db, crud.Spec{Table: "programs", Resource: "Program", OrderBy: tt.orderBy})

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM programs t")).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM programs t"+tt.want)).
				WithArgs(2, 2).
				WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 1, true, "Literacy"))

			page, err := table.FindAllPaginated(context.Background(), 2, 2, crud.AnyState)

			require.NoError(t, err)
			require.Len(t, page.Data, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestFindAll_Visibility lists hidden rows only.
*/
func TestFindAll_Visibility(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM programs t WHERE t.is_active = $1 ORDER BY t.title ASC, t.id DESC")).
		WithArgs(false).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 1, false, "Draft"))

	rows, err := programs(db).FindAll(context.Background(), crud.InactiveOnly, "t.title ASC")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Visible())
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFindByID_NotFound maps an empty result onto a resource-named 404.
*/
func TestFindByID_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM programs t WHERE t.id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	_, err := programs(db).FindByID(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Program not found", err.Error())
}

/*
TestGetFirst_OrdersByID reads the singleton row.
*/
func TestGetFirst_OrdersByID(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM programs t WHERE t.is_active = $1 ORDER BY t.id ASC LIMIT 1")).
		WithArgs(true).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 1, true, "Hero"))

	row, err := programs(db).GetFirst(context.Background(), crud.ActiveOnly)

	require.NoError(t, err)
	assert.Equal(t, int64(1), row.ID)
}

/*
TestCreate_HighlightIsExclusive clears other highlights and inserts in one transaction.
*/
func TestCreate_HighlightIsExclusive(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET is_highlighted = FALSE WHERE id <> $1 AND is_highlighted = TRUE")).
		WithArgs(int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO programs (title, is_highlighted) VALUES ($1, $2) RETURNING id")).
		WithArgs("Scholarship", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(12)).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 12, true, "Scholarship"))
	mock.ExpectCommit()

	var changes crud.Changeset
	changes.Set("title", "Scholarship").Set("is_highlighted", true)

	row, err := programs(db).Create(context.Background(), changes)

	require.NoError(t, err)
	assert.Equal(t, int64(12), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestCreate_NoHighlight skips the transaction.
*/
func TestCreate_NoHighlight(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO programs DEFAULT VALUES RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 4, true, ""))

	_, err := programs(db).Create(context.Background(), crud.Changeset{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestUpdate_HighlightClearsFirst clears other rows before updating, and rolls
back when the target row is missing.
*/
func TestUpdate_HighlightClearsFirst(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET is_highlighted = FALSE WHERE id <> $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET is_highlighted = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	var changes crud.Changeset
	changes.Set("is_highlighted", true)

	_, err := programs(db).Update(context.Background(), 5, changes)

	assert.True(t, apperr.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestUpdate_Partial only touches the supplied columns.
*/
func TestUpdate_Partial(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE programs SET title = $1, is_highlighted = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("Renamed", false, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 5, true, "Renamed"))

	input := itemInput{Title: optional.Of("Renamed"), IsHighlighted: optional.Of(convert.Bool(false))}
	row, err := programs(db).Update(context.Background(), 5, input.Changes())

	require.NoError(t, err)
	assert.Equal(t, "Renamed", row.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestUpdate_EmptyChangeset reads the row without writing.
*/
func TestUpdate_EmptyChangeset(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 5, true, "Same"))

	row, err := programs(db).Update(context.Background(), 5, itemInput{}.Changes())

	require.NoError(t, err)
	assert.Equal(t, "Same", row.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestService_DeleteMissing reports a 404 when nothing was removed.
*/
func TestService_DeleteMissing(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM programs WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	service := crud.NewService[item, itemInput](programs(db))
	err := service.Delete(context.Background(), 8)

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_GetVisible hides inactive rows from public reads.
*/
func TestService_GetVisible(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(itemRow(sqlmock.NewRows(itemColumns), 2, false, "Hidden"))

	service := crud.NewService[item, itemInput](programs(db))
	_, err := service.GetVisible(context.Background(), 2)

	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_CreateRequiresFields runs create-only validation before SQL.
*/
func TestService_CreateRequiresFields(t *testing.T) {
	db, mock := newMock(t)

	service := crud.NewService[item, itemInput](programs(db))
	_, err := service.Create(context.Background(), itemInput{})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseVisibility(t *testing.T) {
	assert.Equal(t, crud.ActiveOnly, crud.ParseVisibility("true"))
	assert.Equal(t, crud.ActiveOnly, crud.ParseVisibility("1"))
	assert.Equal(t, crud.InactiveOnly, crud.ParseVisibility("FALSE"))
	assert.Equal(t, crud.AnyState, crud.ParseVisibility(""))
	assert.Equal(t, crud.AnyState, crud.ParseVisibility("maybe"))
}

func TestParseCategoryRef(t *testing.T) {
	id, ok := crud.ParseCategoryRef(" 12 ").ID()
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	slug, ok := crud.ParseCategoryRef("0").Slug()
	assert.True(t, ok)
	assert.Equal(t, "0", slug)

	slug, ok = crud.ParseCategoryRef("press-release").Slug()
	assert.True(t, ok)
	assert.Equal(t, "press-release", slug)

	assert.True(t, crud.ParseCategoryRef("").IsZero())
}

func TestChangeset(t *testing.T) {
	var changes crud.Changeset
	changes.Set("title", "a").Set("slug", "a").Set("title", "b")
	changes.SetField("summary", optional.Null[string]())
	changes.SetField("skipped", optional.Value[string]{})

	assert.Equal(t, []string{"title", "slug", "summary"}, changes.Columns())

	value, ok := changes.Get("title")
	assert.True(t, ok)
	assert.Equal(t, "b", value)

	summary, _ := changes.Get("summary")
	assert.Nil(t, summary)

	changes.Remove("slug")
	assert.Equal(t, 2, changes.Len())
	assert.False(t, changes.Has("slug"))
	assert.False(t, changes.Truthy("title"))
}

type unbindable struct{}

func (unbindable) Value() (driver.Value, error) {
	return nil, errors.New("out of range")
}

/*
TestChangeset_FieldError keeps an unbindable value out of the statement and
fails the write before any SQL runs.
*/
func TestChangeset_FieldError(t *testing.T) {
	var changes crud.Changeset
	changes.SetField("title", optional.Of("Kept"))
	changes.SetField("published_at", optional.Of(unbindable{}))

	assert.Equal(t, []string{"title"}, changes.Columns())
	ae := apperr.As(changes.Err())
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Equal(t, "published_at", ae.Details[0].Field)

	db, mock := newMock(t)
	table := programs(db)

	_, err := table.Create(context.Background(), changes)
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

	_, err = table.Update(context.Background(), 1, changes)
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestParseListQuery reads paging, category, search and the admin is_active
filter from the query string.
*/
func TestParseListQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?page=3&limit=5&category=events&search=water&is_active=false", nil)

	query := crud.ParseListQuery(request, crud.AdminVisibility(request))

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 5, query.Limit)
	assert.Equal(t, crud.InactiveOnly, query.Visibility)
	slug, ok := query.Category.Slug()
	assert.True(t, ok)
	assert.Equal(t, "events", slug)
	assert.Equal(t, "water", query.Search)

	defaults := crud.ParseListQuery(httptest.NewRequest(http.MethodGet, "/", nil), crud.ActiveOnly)
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 10, defaults.Limit)
	assert.True(t, defaults.Category.IsZero())
}

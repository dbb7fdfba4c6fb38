// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/core/section"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/pkg/optional"
)

var heroColumns = []string{
	"id", "is_active", "created_at", "updated_at", "title", "subtitle", "description",
	"background_image", "button_text", "button_link",
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newService(t *testing.T) (*section.Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return section.NewService(sqlx.NewDb(db, database.DriverName)), mock
}

func newRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	service, mock := newService(t)
	handler := section.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api/sections", handler.PublicRoutes)
	router.Route("/api/admin/sections", handler.AdminRoutes)
	return router, mock
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	var decoded envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder, decoded
}

/*
TestPublic_EmptySection returns 404 when the table has no active row, and
for unknown section names.
*/
func TestPublic_EmptySection(t *testing.T) {
	router, mock := newRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.* FROM hero_section t WHERE t.is_active = $1 ORDER BY t.id ASC LIMIT 1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(heroColumns))

	recorder, _ := serve(t, router, http.MethodGet, "/api/sections/hero", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder, _ = serve(t, router, http.MethodGet, "/api/sections/unknown", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSave_MissingRow targets the default id on an empty table and reports
no data instead of an error.
*/
func TestSave_MissingRow(t *testing.T) {
	router, mock := newRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM hero_section t ORDER BY t.id ASC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows(heroColumns))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE hero_section SET title = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("Welcome", section.DefaultID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	recorder, body := serve(t, router, http.MethodPut, "/api/admin/sections/hero", `{"title": "Welcome"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Section updated successfully", body.Message)
	assert.JSONEq(t, "null", string(body.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSave_ExistingRow updates the first row by its real id, even when it is
inactive.
*/
func TestSave_ExistingRow(t *testing.T) {
	service, mock := newService(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM hero_section t ORDER BY t.id ASC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows(heroColumns).AddRow(7, false, now, now, "Old", nil, nil, nil, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE hero_section SET title = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("New", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM hero_section t WHERE t.id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(heroColumns).AddRow(7, false, now, now, "New", nil, nil, nil, nil, nil))

	hero, err := service.Hero.Save(context.Background(), section.HeroInput{Title: optional.Of("New")})

	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, "New", *hero.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestCreate_Conflict refuses a second row.
*/
func TestCreate_Conflict(t *testing.T) {
	router, mock := newRouter(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("LOCK TABLE vision_section IN SHARE ROW EXCLUSIVE MODE")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM vision_section t")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	recorder, _ := serve(t, router, http.MethodPost, "/api/admin/sections/vision", `{"title": "Our vision"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestCreate_Statistics stores the stats array as JSON.
*/
func TestCreate_Statistics(t *testing.T) {
	router, mock := newRouter(t)
	now := time.Now()
	stats := `[{"label":"Volunteers","value":"300"}]`

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("LOCK TABLE home_statistics")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM home_statistics t")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO home_statistics (stats) VALUES ($1) RETURNING id")).
		WithArgs([]byte(stats)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM home_statistics t WHERE t.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "created_at", "updated_at", "title", "subtitle", "stats"}).
			AddRow(1, true, now, now, nil, nil, []byte(stats)))
	mock.ExpectCommit()

	recorder, body := serve(t, router, http.MethodPost, "/api/admin/sections/statistics", `{"stats": `+stats+`}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	var created struct {
		Stats json.RawMessage `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.JSONEq(t, stats, string(created.Stats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

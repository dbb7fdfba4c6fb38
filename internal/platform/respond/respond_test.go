// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/pkg/pagination"
)

/*
TestOK_Envelope pins the success envelope field names.
*/
func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, "Article retrieved successfully", map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Article retrieved successfully",
		"data": {"id": 1},
		"error": null
	}`, recorder.Body.String())
}

/*
TestPaginated_Envelope verifies the pagination block is attached.
*/
func TestPaginated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, "Articles retrieved successfully", []int{1, 2}, pagination.NewMeta(1, 2, 3))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	meta, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), meta["totalPages"])
	assert.Equal(t, true, meta["hasNextPage"])
}

/*
TestError_Envelope covers AppErrors, plain errors and cause exposure.
*/
func TestError_Envelope(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/articles/9", nil)

	t.Run("app_error", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, apperr.NotFound("Article"))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{
			"success": false,
			"message": "Article not found",
			"data": null,
			"error": {"code": "NOT_FOUND"}
		}`, recorder.Body.String())
	})

	t.Run("plain_error_hidden_in_production", func(t *testing.T) {
		respond.ExposeCauses(false)
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, errors.New("pq: relation missing"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "relation missing")
	})

	t.Run("cause_exposed_in_development", func(t *testing.T) {
		respond.ExposeCauses(true)
		defer respond.ExposeCauses(false)

		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, fmt.Errorf("list articles: %w", errors.New("relation missing")))

		var body respond.Envelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, []string{"list articles: relation missing", "relation missing"}, body.Error.Stack)
	})

	t.Run("validation_details", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: "title", Message: "This field is required"}))

		var body respond.Envelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "title", body.Error.Details[0].Field)
	})
}

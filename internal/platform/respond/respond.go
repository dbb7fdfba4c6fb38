// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Envelope
//
// Every JSON response, success or failure, has the same shape:
//
//	{"success": true, "message": "...", "data": ..., "error": null}
//
// Paginated lists add a "pagination" block. Clients parse these field names
// literally, so they must not change.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/ctxutil"
	"github.com/taibuivan/beacon/pkg/pagination"
)

// exposeCauses controls whether error causes are echoed to clients.
var exposeCauses atomic.Bool

// ExposeCauses toggles the "stack" field of error bodies. It is enabled
// once at startup for every environment except production.
func ExposeCauses(enabled bool) {
	exposeCauses.Store(enabled)
}

// Envelope is the JSON body of every API response.
type Envelope struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       any              `json:"data"`
	Error      *ErrorBody       `json:"error"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// ErrorBody is the "error" object of a failed response.
type ErrorBody struct {
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
	Stack   []string            `json:"stack,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK success envelope.
func OK(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created writes a 201 Created success envelope.
func Created(writer http.ResponseWriter, message string, data any) {
	JSON(writer, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Accepted writes a 202 Accepted success envelope.
func Accepted(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusAccepted, Envelope{Success: true, Message: message})
}

// Paginated writes a 200 OK envelope with the pagination block.
func Paginated(writer http.ResponseWriter, message string, data any, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &metadata,
	})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.Logger(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	body := &ErrorBody{Code: appError.Code, Details: appError.Details}
	if exposeCauses.Load() {
		body.Stack = causeChain(appError.Cause)
	}

	JSON(writer, appError.HTTPStatus, Envelope{
		Success: false,
		Message: appError.Message,
		Error:   body,
	})
}

// causeChain flattens an error chain into its messages, outermost first.
func causeChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	return chain
}

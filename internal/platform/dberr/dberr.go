// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # SQLSTATE Mapping
//
//   - 23505 unique_violation      -> 409 Conflict
//   - 23503 foreign_key_violation -> 400 "Referenced record does not exist"
//   - 23502 not_null_violation    -> 400 validation error on the column
//   - 23514 check_violation       -> 400 validation error
//   - 22P02 / 22007 bad input     -> 400 validation error
//   - anything else               -> 500
package dberr

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/beacon/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// resource names the entity in not-found messages (e.g. "Article").
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Errors already classified upstream pass through untouched
	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(resource).WithCause(err)
	}

	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return apperr.Internal(err)
	}

	switch pgError.Code {
	case pgerrcode.UniqueViolation:
		message := "Duplicate entry"
		if pgError.Detail != "" {
			message += ": " + pgError.Detail
		}
		return apperr.Conflict(message).WithCause(err)

	case pgerrcode.ForeignKeyViolation:
		return apperr.BadRequest("Referenced record does not exist").WithCause(err)

	case pgerrcode.NotNullViolation:
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   pgError.ColumnName,
			Message: "This field is required",
		}).WithCause(err)

	case pgerrcode.CheckViolation, pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat,
		pgerrcode.StringDataRightTruncationDataException, pgerrcode.NumericValueOutOfRange:
		return apperr.ValidationError("Invalid value: " + pgError.Message).WithCause(err)
	}

	return apperr.Internal(err)
}

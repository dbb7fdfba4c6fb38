// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
Payload structs are checked with go-playground/validator struct tags; the
optional.Value wrappers used by partial updates are unwrapped before the
rules run, so "omitempty" means "key absent or null".
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx/types"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/ctxutil"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// structValidator is safe for concurrent use and caches struct metadata.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	instance := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names
	instance.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	instance.RegisterCustomTypeFunc(unwrapOptional,
		optional.Value[string]{},
		optional.Value[int]{},
		optional.Value[int64]{},
		optional.Value[float64]{},
		optional.Value[convert.Bool]{},
		optional.Value[convert.Timestamp]{},
		optional.Value[types.JSONText]{},
	)

	return instance
}

// unwrapOptional exposes the payload of an optional.Value to the validator.
func unwrapOptional(field reflect.Value) any {
	if wrapped, ok := field.Interface().(interface{ Interface() any }); ok {
		return wrapped.Interface()
	}
	return nil
}

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON for malformed bodies, a field-level
    validation error when a value has the wrong type, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(target); err != nil {
		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) && typeError.Field != "" {
			return validate.RequiredError(typeError.Field, "Invalid value type")
		}
		if errors.Is(err, io.EOF) {
			return apperr.ValidationError("Request body is required")
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Validate runs struct-tag rules on target and converts failures into a
VALIDATION_ERROR with one detail per field.
*/
func Validate(target any) error {
	err := structValidator.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldError.Field(),
			Message: describe(fieldError),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

// Decode is DecodeJSON followed by Validate.
func Decode(writer http.ResponseWriter, request *http.Request, target any) error {
	if err := DecodeJSON(writer, request, target); err != nil {
		return err
	}
	return Validate(target)
}

// describe renders a human message for a failed rule.
func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url", "http_url":
		return "Must be a valid URL"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldError.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", fieldError.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fieldError.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fieldError.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID parses a positive integer URL parameter.

Returns:
  - int64: The identifier
  - error: apperr.BadRequest when the parameter is not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	id, ok := convert.ToInt64(chi.URLParam(request, name))
	if !ok || id < 1 {
		return 0, apperr.BadRequest("Invalid ID")
	}
	return id, nil
}

/*
Claims extracts the authenticated admin claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	claims, _ := ctxutil.Claims(request.Context())
	return claims
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The authenticated admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims, ok := ctxutil.Claims(request.Context())
	if !ok {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/optional"
)

/*
TestValidator_RequiredText covers the three states of an optional text field.
*/
func TestValidator_RequiredText(t *testing.T) {
	tests := []struct {
		name     string
		value    optional.Value[string]
		hasError bool
	}{
		{"present", optional.Of("Clean water"), false},
		{"absent", optional.Value[string]{}, true},
		{"null", optional.Null[string](), true},
		{"blank", optional.Of("   "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.RequiredText("title", tt.value)

			assert.Equal(t, tt.hasError, v.HasErrors())
			if tt.hasError {
				ae := apperr.As(v.Err())
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, "title", ae.Details[0].Field)
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "hello@example.org", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").
		MinLen("password", "short", 8).
		Slug("slug", "Not A Slug").
		Present("category_id", false).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}

/*
TestValidator_Chain_Success ensures a clean chain yields nil.
*/
func TestValidator_Chain_Success(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Education").
		Slug("slug", "education").
		OneOf("role", "editor", "super_admin", "admin", "editor").
		MaxLen("name", "Education", 255).
		Err()

	assert.NoError(t, err)
}

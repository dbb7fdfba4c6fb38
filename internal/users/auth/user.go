// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"strings"
	"time"

	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

const resourceName = "User"

// # Domain Entities

// User is an admin account. The password hash never leaves the process.
type User struct {
	crud.Base
	Name         string       `db:"name"          json:"name"`
	Email        string       `db:"email"         json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"`
	Role         sec.UserRole `db:"role"          json:"role"`
	LastLoginAt  *time.Time   `db:"last_login_at" json:"last_login_at"`
}

// Identity returns the token subject for the account.
func (user *User) Identity() sec.Identity {
	return sec.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
}

// Session is the login response.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	User         *User  `json:"user"`
}

// # Payloads

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required"`
}

// UserInput creates or partially updates an admin account.
//
// Password is hashed before it reaches the table; the plain value is never
// stored.
type UserInput struct {
	Name     optional.Value[string]       `json:"name"      validate:"omitempty,max=255"`
	Email    optional.Value[string]       `json:"email"     validate:"omitempty,max=255"`
	Password optional.Value[string]       `json:"password"`
	Role     optional.Value[string]       `json:"role"`
	IsActive optional.Value[convert.Bool] `json:"is_active"`

	passwordHash string
}

// Changes lists the columns present in the request.
func (input UserInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField(schema.AdminUser.Name, input.Name)
	if email, ok := input.Email.Get(); ok {
		changes.Set(schema.AdminUser.Email, normalizeEmail(email))
	}
	changes.SetField(schema.AdminUser.Role, input.Role)
	changes.SetField(schema.AdminUser.IsActive, input.IsActive)
	if input.passwordHash != "" {
		changes.Set(schema.AdminUser.PasswordHash, input.passwordHash)
	}
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input UserInput) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("name", input.Name).
		RequiredText("email", input.Email).
		RequiredText("password", input.Password)

	return input.validateFields(validator).Err()
}

// ValidateUpdate checks only the fields present in the payload.
func (input UserInput) ValidateUpdate() error {
	validator := &validate.Validator{}
	if input.Name.IsNull() {
		validator.Required("name", "")
	}
	if input.Email.IsNull() {
		validator.Required("email", "")
	}
	return input.validateFields(validator).Err()
}

func (input UserInput) validateFields(validator *validate.Validator) *validate.Validator {
	if email, ok := input.Email.Get(); ok && strings.TrimSpace(email) != "" {
		validator.Email("email", email)
	}
	if password, ok := input.Password.Get(); ok && password != "" {
		validator.MinLen("password", password, constants.MinPasswordLength)
	}
	if input.Role.IsSet() {
		role := input.Role.OrElse("")
		validator.OneOf("role", role,
			string(sec.RoleSuperAdmin), string(sec.RoleAdmin), string(sec.RoleEditor))
	}
	return validator
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

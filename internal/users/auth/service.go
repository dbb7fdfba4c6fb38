// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth manages admin accounts and their access tokens.

# Flow

Login checks the email/password pair against admin_users and returns an
access token plus a refresh token. Every protected request re-checks the
account through [Service.CheckAccount], so deactivating an admin takes
effect immediately.

# Throttling

Failed logins are counted per email and client IP through a
[LoginThrottle]. Redis is used when configured, otherwise an in-process
token bucket.
*/
package auth

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/metrics"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/optional"
)

// # Contracts & Types

// TokenProvider mints and verifies signed tokens.
type TokenProvider interface {
	GenerateAccessToken(identity sec.Identity) (string, error)
	GenerateRefreshToken(identity sec.Identity) (string, error)
	VerifyToken(token string) (*sec.AuthClaims, error)
	AccessTTL() time.Duration
}

// Service implements the admin authentication use cases.
type Service struct {
	users    UserRepository
	throttle LoginThrottle
	tokens   TokenProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the service to its tables.
func NewService(users UserRepository, throttle LoginThrottle, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		throttle: throttle,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// # Authentication

/*
Login verifies credentials and issues a token pair.

Failures are counted per email and IP. Once the limit is reached the key is
rejected with 429 until the window passes, even with a correct password.
*/
func (service *Service) Login(context context.Context, credentials Credentials, clientIP string) (*Session, error) {
	email := normalizeEmail(credentials.Email)
	key := email + "|" + clientIP

	wait, err := service.throttle.Blocked(context, key)
	if err != nil {
		service.logger.Warn("login_throttle_unavailable", slog.Any("error", err))
	}
	if wait > 0 {
		metrics.LoginAttempts.WithLabelValues("throttled").Inc()
		service.logger.Warn("login_throttled", slog.String("email", email), slog.String("ip", clientIP))
		return nil, apperr.RateLimited(int(math.Ceil(wait.Seconds())))
	}

	user, err := service.users.FindByEmail(context, email)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	if user == nil || !sec.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		service.recordFailure(context, key, email)
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	if !user.IsActive {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, apperr.Forbidden("Account is deactivated")
	}

	if err := service.throttle.Reset(context, key); err != nil {
		service.logger.Warn("login_throttle_reset_failed", slog.Any("error", err))
	}

	now := service.now().UTC()
	if err := service.users.TouchLogin(context, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	session, err := service.issue(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	service.logger.Info("admin_logged_in", slog.Int64("user_id", user.ID))
	return session, nil
}

func (service *Service) recordFailure(context context.Context, key, email string) {
	metrics.LoginAttempts.WithLabelValues("failure").Inc()
	service.logger.Warn("login_failed", slog.String("email", email))

	if err := service.throttle.Fail(context, key); err != nil {
		service.logger.Warn("login_throttle_unavailable", slog.Any("error", err))
	}
}

/*
Refresh mints a new access token from any token that still verifies.

The account is re-read so a deactivated or deleted admin cannot refresh,
and the new token carries the current role.
*/
func (service *Service) Refresh(context context.Context, token string) (string, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return "", apperr.Unauthorized("Invalid or expired token").WithCause(err)
	}

	user, err := service.account(context, claims.UserID)
	if err != nil {
		return "", err
	}

	access, err := service.tokens.GenerateAccessToken(user.Identity())
	if err != nil {
		return "", apperr.Internal(err)
	}
	return access, nil
}

// CheckAccount returns the current role of an authenticated admin.
func (service *Service) CheckAccount(context context.Context, userID int64) (sec.UserRole, error) {
	user, err := service.account(context, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// Me returns the authenticated admin.
func (service *Service) Me(context context.Context, userID int64) (*User, error) {
	return service.account(context, userID)
}

// ChangePassword replaces the password after confirming the current one.
func (service *Service) ChangePassword(context context.Context, userID int64, change PasswordChange) error {
	validator := &validate.Validator{}
	validator.MinLen("new_password", change.NewPassword, constants.MinPasswordLength).
		Custom("new_password", change.NewPassword == change.CurrentPassword,
			"Must differ from the current password")
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.account(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(change.CurrentPassword, user.PasswordHash) {
		return apperr.BadRequest("Current password is incorrect")
	}

	hash, err := sec.HashPassword(change.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := service.users.UpdatePassword(context, userID, hash); err != nil {
		return err
	}

	service.logger.Info("admin_password_changed", slog.Int64("user_id", userID))
	return nil
}

// account loads a user that may still act: missing is 401, inactive is 403.
func (service *Service) account(context context.Context, userID int64) (*User, error) {
	user, err := service.users.FindByID(context, userID)
	if apperr.IsNotFound(err) {
		return nil, apperr.Unauthorized("Account no longer exists")
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("Account is deactivated")
	}
	return user, nil
}

func (service *Service) issue(user *User) (*Session, error) {
	identity := user.Identity()

	access, err := service.tokens.GenerateAccessToken(identity)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refresh, err := service.tokens.GenerateRefreshToken(identity)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(service.tokens.AccessTTL().Seconds()),
		User:         user,
	}, nil
}

// # User Management

// ListUsers returns a page of admin accounts.
func (service *Service) ListUsers(context context.Context, query crud.ListQuery) (crud.Page[User], error) {
	return service.users.List(context, query)
}

// GetUser returns one admin account.
func (service *Service) GetUser(context context.Context, id int64) (*User, error) {
	return service.users.FindByID(context, id)
}

// CreateUser adds an admin account. Role defaults to editor.
func (service *Service) CreateUser(context context.Context, input UserInput) (*User, error) {
	if !input.Role.IsSet() {
		input.Role = optional.Of(string(sec.RoleEditor))
	}

	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}

	if err := service.hashInput(&input); err != nil {
		return nil, err
	}

	user, err := service.users.Create(context, input.Changes())
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_user_created", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// UpdateUser applies a partial update. An admin cannot demote or
// deactivate their own account.
func (service *Service) UpdateUser(context context.Context, actorID, id int64, input UserInput) (*User, error) {
	if err := input.ValidateUpdate(); err != nil {
		return nil, err
	}

	if actorID == id {
		if role, ok := input.Role.Get(); ok && role != string(sec.RoleSuperAdmin) {
			return nil, apperr.BadRequest("You cannot change your own role")
		}
		if active, ok := input.IsActive.Get(); ok && !bool(active) {
			return nil, apperr.BadRequest("You cannot deactivate your own account")
		}
	}

	if err := service.hashInput(&input); err != nil {
		return nil, err
	}

	return service.users.Update(context, id, input.Changes())
}

// DeleteUser removes an account other than the actor's own.
func (service *Service) DeleteUser(context context.Context, actorID, id int64) error {
	if actorID == id {
		return apperr.BadRequest("You cannot delete your own account")
	}

	deleted, err := service.users.Delete(context, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(resourceName)
	}

	service.logger.Info("admin_user_deleted", slog.Int64("user_id", id))
	return nil
}

func (service *Service) hashInput(input *UserInput) error {
	password, ok := input.Password.Get()
	if !ok || password == "" {
		return nil
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}
	input.passwordHash = hash
	return nil
}

// # Bootstrap

// Bootstrap creates the first super admin when admin_users is empty.
// It reports whether an account was created.
func (service *Service) Bootstrap(context context.Context, name, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return false, nil
	}

	total, err := service.users.Count(context)
	if err != nil || total > 0 {
		return false, err
	}

	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}

	user, err := service.CreateUser(context, UserInput{
		Name:     optional.Of(name),
		Email:    optional.Of(email),
		Password: optional.Of(password),
		Role:     optional.Of(string(sec.RoleSuperAdmin)),
	})
	if err != nil {
		return false, err
	}

	service.logger.Info("admin_bootstrapped", slog.Int64("user_id", user.ID), slog.String("email", user.Email))
	return true, nil
}

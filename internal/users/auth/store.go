// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/dberr"
)

// # Repository Interfaces

// UserRepository defines the persistence contract for admin accounts.
type UserRepository interface {
	List(ctx context.Context, query crud.ListQuery) (crud.Page[User], error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, changes crud.Changeset) (*User, error)
	Update(ctx context.Context, id int64, changes crud.Changeset) (*User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	TouchLogin(ctx context.Context, id int64, at time.Time) error
}

// LoginThrottle counts failed logins per key inside a fixed window.
type LoginThrottle interface {
	// Blocked returns how long the key must wait, or zero when it may try.
	Blocked(ctx context.Context, key string) (time.Duration, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// # Postgres Implementation

// PostgresUserRepository stores admin accounts in admin_users.
type PostgresUserRepository struct {
	table *crud.Table[User]
}

// NewUserRepository creates a PostgresUserRepository over db.
func NewUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		table: crud.NewTable[User](db, crud.Spec{
			Table:         schema.AdminUser.Table,
			Resource:      resourceName,
			SearchColumns: []string{schema.AdminUser.Name, schema.AdminUser.Email},
			OrderBy:       "t.created_at DESC",
		}),
	}
}

// List returns a page of accounts, newest first.
func (repository *PostgresUserRepository) List(context context.Context, query crud.ListQuery) (crud.Page[User], error) {
	return repository.table.FindAllPaginatedWithSearch(context, query)
}

// FindByID returns the account with the given id.
func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.table.FindByID(context, id)
}

// FindByEmail looks an account up by its lowercased email.
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.table.FindOne(context, "", crud.Eq("t."+schema.AdminUser.Email, email))
}

// Count returns the number of accounts.
func (repository *PostgresUserRepository) Count(context context.Context) (int, error) {
	return repository.table.Count(context, crud.AnyState)
}

// Create inserts an account and returns it.
func (repository *PostgresUserRepository) Create(context context.Context, changes crud.Changeset) (*User, error) {
	return repository.table.Create(context, changes)
}

// Update applies changes to an account.
func (repository *PostgresUserRepository) Update(context context.Context, id int64, changes crud.Changeset) (*User, error) {
	return repository.table.Update(context, id, changes)
}

// Delete reports whether an account was removed.
func (repository *PostgresUserRepository) Delete(context context.Context, id int64) (bool, error) {
	return repository.table.Delete(context, id)
}

// UpdatePassword stores a new password hash.
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, id int64, hash string) error {
	var changes crud.Changeset
	changes.Set(schema.AdminUser.PasswordHash, hash)
	_, err := repository.table.Update(context, id, changes)
	return err
}

// TouchLogin records a successful login without bumping updated_at.
func (repository *PostgresUserRepository) TouchLogin(context context.Context, id int64, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.AdminUser.Table, schema.AdminUser.LastLoginAt, schema.AdminUser.ID)

	if _, err := repository.table.Querier().ExecContext(context, query, at, id); err != nil {
		return dberr.Wrap(err, resourceName)
	}
	return nil
}

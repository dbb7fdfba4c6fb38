// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"

	"github.com/taibuivan/beacon/internal/platform/apperr"
)

// Input is a decoded create or update payload.
type Input interface {
	Changes() Changeset
}

// CreateChecker is implemented by inputs with fields required on create only.
type CreateChecker interface {
	ValidateCreate() error
}

// visible is satisfied by every entity embedding [Base].
type visible interface {
	Visible() bool
}

// Service exposes the standard operations of one [Table] to HTTP handlers.
type Service[T any, I Input] struct {
	table *Table[T]
}

// NewService wraps a table.
func NewService[T any, I Input](table *Table[T]) *Service[T, I] {
	return &Service[T, I]{table: table}
}

// Table returns the underlying engine for entity-specific queries.
func (service *Service[T, I]) Table() *Table[T] {
	return service.table
}

// List returns one filtered page.
func (service *Service[T, I]) List(context context.Context, query ListQuery) (Page[T], error) {
	return service.table.FindAllPaginatedWithSearch(context, query)
}

// All returns every row matching the visibility filter in default order.
func (service *Service[T, I]) All(context context.Context, visibility Visibility) ([]T, error) {
	return service.table.FindAll(context, visibility, "")
}

// Get returns one row by id.
func (service *Service[T, I]) Get(context context.Context, id int64) (*T, error) {
	return service.table.FindByID(context, id)
}

// GetVisible returns one row by id, hiding inactive rows as not found.
func (service *Service[T, I]) GetVisible(context context.Context, id int64) (*T, error) {
	row, err := service.table.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if entity, ok := any(row).(visible); ok && !entity.Visible() {
		return nil, apperr.NotFound(service.table.spec.Resource)
	}

	return row, nil
}

// Create validates create-only rules and inserts the row.
func (service *Service[T, I]) Create(context context.Context, input I) (*T, error) {
	if checker, ok := any(input).(CreateChecker); ok {
		if err := checker.ValidateCreate(); err != nil {
			return nil, err
		}
	}
	return service.table.Create(context, input.Changes())
}

// Update applies a partial update.
func (service *Service[T, I]) Update(context context.Context, id int64, input I) (*T, error) {
	return service.table.Update(context, id, input.Changes())
}

// Delete removes a row, failing with NotFound when it did not exist.
func (service *Service[T, I]) Delete(context context.Context, id int64) error {
	deleted, err := service.table.Delete(context, id)
	if err != nil {
		return err
	}

	if !deleted {
		return apperr.NotFound(service.table.spec.Resource)
	}

	return nil
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/dberr"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
)

const resourceName = "Section"

// DefaultID is the row a save targets while the table is still empty.
const DefaultID int64 = 1

type keyed interface {
	Key() int64
}

// Singleton is one single-row section table.
type Singleton[T any, I crud.Input] struct {
	table *crud.Table[T]
}

func newSingleton[T any, I crud.Input](db *sqlx.DB, table string) *Singleton[T, I] {
	return &Singleton[T, I]{table: crud.NewTable[T](db, crud.Spec{
		Table:    table,
		Resource: resourceName,
		OrderBy:  "t.id ASC",
	})}
}

// First returns the first active row, or nil when there is none.
func (singleton *Singleton[T, I]) First(context context.Context) (*T, error) {
	return singleton.first(context, crud.ActiveOnly)
}

// Current returns the first row regardless of visibility, or nil.
func (singleton *Singleton[T, I]) Current(context context.Context) (*T, error) {
	return singleton.first(context, crud.AnyState)
}

func (singleton *Singleton[T, I]) first(context context.Context, visibility crud.Visibility) (*T, error) {
	row, err := singleton.table.GetFirst(context, visibility)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	return row, err
}

// Save updates the existing row, or row [DefaultID] when the table is empty.
// It returns nil without error when that row does not exist.
func (singleton *Singleton[T, I]) Save(context context.Context, input I) (*T, error) {
	current, err := singleton.Current(context)
	if err != nil {
		return nil, err
	}

	id := DefaultID
	if current != nil {
		id = any(current).(keyed).Key()
	}

	row, err := singleton.table.Update(context, id, input.Changes())
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	return row, err
}

// Create inserts the row. It fails with a conflict once a row exists.
func (singleton *Singleton[T, I]) Create(context context.Context, input I) (*T, error) {
	var created *T
	err := singleton.table.InTx(context, func(tx *crud.Table[T]) error {
		lock := "LOCK TABLE " + tx.Spec().Table + " IN SHARE ROW EXCLUSIVE MODE"
		if _, err := tx.Querier().ExecContext(context, lock); err != nil {
			return dberr.Wrap(err, resourceName)
		}

		count, err := tx.Count(context, crud.AnyState)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("Section already exists. Update it instead.")
		}

		created, err = tx.Create(context, input.Changes())
		return err
	})
	return created, err
}

// # HTTP Adapter

// slot is the type-erased view of a [Singleton] used by the handler.
type slot interface {
	public(context context.Context) (any, error)
	current(context context.Context) (any, error)
	save(writer http.ResponseWriter, request *http.Request) (any, error)
	create(writer http.ResponseWriter, request *http.Request) (any, error)
}

func (singleton *Singleton[T, I]) public(context context.Context) (any, error) {
	row, err := singleton.First(context)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound(resourceName)
	}
	return row, nil
}

func (singleton *Singleton[T, I]) current(context context.Context) (any, error) {
	row, err := singleton.Current(context)
	if err != nil || row == nil {
		return nil, err
	}
	return row, nil
}

func (singleton *Singleton[T, I]) save(writer http.ResponseWriter, request *http.Request) (any, error) {
	var input I
	if err := requestutil.Decode(writer, request, &input); err != nil {
		return nil, err
	}

	row, err := singleton.Save(request.Context(), input)
	if err != nil || row == nil {
		return nil, err
	}
	return row, nil
}

func (singleton *Singleton[T, I]) create(writer http.ResponseWriter, request *http.Request) (any, error) {
	var input I
	if err := requestutil.Decode(writer, request, &input); err != nil {
		return nil, err
	}
	return singleton.Create(request.Context(), input)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"slices"

	"github.com/taibuivan/beacon/internal/platform/apperr"
)

// Field is a payload value that may be absent. optional.Value satisfies it.
type Field interface {
	IsSet() bool
	SQLValue() (any, error)
}

// Changeset is an ordered list of column assignments for INSERT or UPDATE.
//
// Columns come from code, never from request keys, so they are safe to
// interpolate into SQL. Values are always bound as parameters.
type Changeset struct {
	columns []string
	values  []any
	err     error
}

// Set assigns value to column, replacing an earlier assignment.
func (changes *Changeset) Set(column string, value any) *Changeset {
	if index := slices.Index(changes.columns, column); index >= 0 {
		changes.values[index] = value
		return changes
	}

	changes.columns = append(changes.columns, column)
	changes.values = append(changes.values, value)
	return changes
}

// SetField assigns the field only when it was present in the payload.
// An explicit null becomes SQL NULL. A value that cannot be bound is left
// out and recorded as the changeset error.
func (changes *Changeset) SetField(column string, field Field) *Changeset {
	if !field.IsSet() {
		return changes
	}

	value, err := field.SQLValue()
	if err != nil {
		if changes.err == nil {
			changes.err = apperr.ValidationError("Invalid field value",
				apperr.FieldError{Field: column, Message: err.Error()}).WithCause(err)
		}
		return changes
	}

	changes.Set(column, value)
	return changes
}

// Err returns the first field that failed to resolve, if any.
func (changes Changeset) Err() error {
	return changes.err
}

// Remove drops the assignment for column, if any.
func (changes *Changeset) Remove(column string) {
	if index := slices.Index(changes.columns, column); index >= 0 {
		changes.columns = slices.Delete(changes.columns, index, index+1)
		changes.values = slices.Delete(changes.values, index, index+1)
	}
}

// Len returns the number of assignments.
func (changes Changeset) Len() int {
	return len(changes.columns)
}

// Get returns the value assigned to column.
func (changes Changeset) Get(column string) (any, bool) {
	if index := slices.Index(changes.columns, column); index >= 0 {
		return changes.values[index], true
	}
	return nil, false
}

// Has reports whether column is assigned.
func (changes Changeset) Has(column string) bool {
	_, ok := changes.Get(column)
	return ok
}

// Truthy reports whether column is assigned the boolean true.
func (changes Changeset) Truthy(column string) bool {
	value, ok := changes.Get(column)
	flag, isBool := value.(bool)
	return ok && isBool && flag
}

// Columns returns a copy of the assigned column names in order.
func (changes Changeset) Columns() []string {
	return slices.Clone(changes.columns)
}

// Values returns a copy of the bound values in column order.
func (changes Changeset) Values() []any {
	return slices.Clone(changes.values)
}

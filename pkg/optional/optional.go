// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package optional models a field of a partial-update payload.

A JSON body distinguishes three states for every key: absent, explicitly null,
and present with a value. Plain Go pointers collapse the first two, which is
exactly the distinction a PATCH-style update needs. [Value] keeps all three.

		type Input struct {
		    Title optional.Value[string] `json:"title"`
		}

	  - key missing         -> IsSet() == false (column untouched)
	  - "title": null       -> IsSet() && IsNull() (column set to NULL)
	  - "title": "Welcome"  -> Get() == ("Welcome", true)
*/
package optional

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
)

// Value holds an optional, nullable T decoded from JSON.
type Value[T any] struct {
	value T
	set   bool
	null  bool
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// Null returns a present value that is explicitly null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the key appeared in the payload (null included).
func (v Value[T]) IsSet() bool { return v.set }

// IsNull reports whether the key appeared with a JSON null.
func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value and true when it is present and not null.
func (v Value[T]) Get() (T, bool) {
	if !v.set || v.null {
		var zero T
		return zero, false
	}
	return v.value, true
}

// OrElse returns the value, or fallback when absent or null.
func (v Value[T]) OrElse(fallback T) T {
	if value, ok := v.Get(); ok {
		return value
	}
	return fallback
}

// Interface returns the payload as an untyped value, nil when absent or null.
// It feeds struct-tag validation which treats nil as "empty".
func (v Value[T]) Interface() any {
	if value, ok := v.Get(); ok {
		return value
	}
	return nil
}

// SQLValue returns the value to bind for the column.
//
// Null maps to SQL NULL. Types implementing [driver.Valuer] are resolved so
// the driver receives a primitive; their errors are returned unchanged.
func (v Value[T]) SQLValue() (any, error) {
	value, ok := v.Get()
	if !ok {
		return nil, nil
	}

	if valuer, isValuer := any(value).(driver.Valuer); isValuer {
		return valuer.Value()
	}

	return value, nil
}

// UnmarshalJSON implements [json.Unmarshaler]. It only runs when the key is
// present in the document, which is what marks the value as set.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}

	v.null = false
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON emits null for absent or null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	value, ok := v.Get()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(value)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package crud is the generic persistence engine behind every content table.

One [Table] per database table provides list, paginate, search, get, create,
partial update, delete and "first row" lookups. Entities only describe
themselves through a [Spec]: the table name, an optional category join, the
searchable columns and the default order.

# Shared Columns

Every table has id, is_active, created_at and updated_at ([Base]).
is_active hides a row from public reads without deleting it.

# Highlight Exclusivity

Tables flagged with Spec.Highlight keep at most one row with
is_highlighted = TRUE. Create and update calls that set the flag clear it
on every other row inside the same transaction.
*/
package crud

import (
	"strings"
	"time"

	"github.com/taibuivan/beacon/pkg/pagination"
)

// Base holds the columns shared by all content tables.
type Base struct {
	ID        int64     `db:"id"         json:"id"`
	IsActive  bool      `db:"is_active"  json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Key returns the primary key.
func (base Base) Key() int64 {
	return base.ID
}

// Visible reports whether public endpoints may serve the row.
func (base Base) Visible() bool {
	return base.IsActive
}

// # Visibility Filter

// Visibility filters rows by their is_active flag.
type Visibility int

const (
	// AnyState applies no filter (admin reads).
	AnyState Visibility = iota
	// ActiveOnly keeps is_active = TRUE rows (public reads).
	ActiveOnly
	// InactiveOnly keeps hidden rows.
	InactiveOnly
)

// ParseVisibility maps an is_active query value onto a filter.
// Anything other than a recognisable boolean means no filter.
func ParseVisibility(raw string) Visibility {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return ActiveOnly
	case "false", "0":
		return InactiveOnly
	default:
		return AnyState
	}
}

// condition translates the filter into a WHERE condition, if any.
func (visibility Visibility) condition() (Condition, bool) {
	switch visibility {
	case ActiveOnly:
		return Eq("t.is_active", true), true
	case InactiveOnly:
		return Eq("t.is_active", false), true
	default:
		return Condition{}, false
	}
}

// # Result Page

// Page is one slice of a paginated listing plus the unpaged total.
type Page[T any] struct {
	Data  []T
	Total int
	Page  int
	Limit int
}

// Meta builds the response pagination block.
func (page Page[T]) Meta() pagination.Meta {
	return pagination.NewMeta(page.Page, page.Limit, page.Total)
}

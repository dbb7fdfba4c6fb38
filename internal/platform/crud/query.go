// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"fmt"
	"strings"

	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/pagination"
)

// Condition is an equality filter on a column.
type Condition struct {
	Column string
	Value  any
}

// Eq builds the condition column = value.
func Eq(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

// # Category Reference

// CategoryRef identifies a category either by numeric id or by slug.
// The zero value means "no category filter".
type CategoryRef struct {
	id   int64
	slug string
}

// ByCategoryID references a category by primary key.
func ByCategoryID(id int64) CategoryRef {
	return CategoryRef{id: id}
}

// ByCategorySlug references a category by slug.
func ByCategorySlug(slug string) CategoryRef {
	return CategoryRef{slug: slug}
}

// ParseCategoryRef reads a raw "category" query value. A positive integer is
// an id, any other non-empty text is a slug.
func ParseCategoryRef(raw string) CategoryRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CategoryRef{}
	}

	if id, ok := convert.ToInt64(raw); ok && id > 0 {
		return ByCategoryID(id)
	}

	return ByCategorySlug(raw)
}

// ID returns the referenced id, if the reference is numeric.
func (ref CategoryRef) ID() (int64, bool) {
	return ref.id, ref.id > 0
}

// Slug returns the referenced slug, if the reference is textual.
func (ref CategoryRef) Slug() (string, bool) {
	return ref.slug, ref.slug != ""
}

// IsZero reports whether no category was requested.
func (ref CategoryRef) IsZero() bool {
	return ref.id == 0 && ref.slug == ""
}

// # List Query

// ListQuery describes one paginated listing request.
type ListQuery struct {
	Page       int
	Limit      int
	Visibility Visibility
	Category   CategoryRef
	Search     string
	Where      []Condition
}

// normalize applies paging defaults.
func (query ListQuery) normalize() ListQuery {
	if query.Page < 1 {
		query.Page = pagination.DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = pagination.DefaultLimit
	}
	return query
}

// whereBuilder accumulates WHERE clauses with positional arguments.
// Each clause consumes exactly one argument referenced as %[1]d.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (builder *whereBuilder) add(format string, arg any) {
	builder.args = append(builder.args, arg)
	builder.clauses = append(builder.clauses, fmt.Sprintf(format, len(builder.args)))
}

func (builder *whereBuilder) equal(condition Condition) {
	builder.add(condition.Column+" = $%[1]d", condition.Value)
}

// String renders " WHERE a AND b", or nothing when there are no clauses.
func (builder *whereBuilder) String() string {
	if len(builder.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(builder.clauses, " AND ")
}

// searchPattern wraps a term for ILIKE, escaping its wildcards.
func searchPattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(term) + "%"
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/internal/platform/dberr"
	"github.com/taibuivan/beacon/pkg/pagination"
)

// DefaultOrder is the listing order for tables without a date column.
const DefaultOrder = "t.order_position ASC, t.created_at DESC"

// Spec describes one table to the engine.
type Spec struct {
	// Table is the SQL table name, aliased as "t" in every query.
	Table string

	// Resource names the entity in error messages, e.g. "Article".
	Resource string

	// CategoryTable, when set, joins categories as "c" and exposes
	// category_name and category_slug on every row.
	CategoryTable string

	// SearchColumns are matched case-insensitively by ListQuery.Search.
	// Unqualified names refer to the table itself, "c.name" to the category.
	SearchColumns []string

	// OrderBy is the default ORDER BY clause. Empty means [DefaultOrder].
	// Listings always finish on t.id.
	OrderBy string

	// Highlight enables is_highlighted exclusivity.
	Highlight bool
}

// Table runs the generic queries for one entity type.
//
// T must be a struct scannable by sqlx, usually embedding [Base].
type Table[T any] struct {
	db   *sqlx.DB
	q    sqlx.ExtContext
	spec Spec
}

// NewTable creates the engine for one table.
func NewTable[T any](db *sqlx.DB, spec Spec) *Table[T] {
	if spec.OrderBy == "" {
		spec.OrderBy = DefaultOrder
	}
	return &Table[T]{db: db, q: db, spec: spec}
}

// Spec returns the table description.
func (table *Table[T]) Spec() Spec {
	return table.spec
}

// Querier exposes the current executor (pool or transaction) for custom SQL.
func (table *Table[T]) Querier() sqlx.ExtContext {
	return table.q
}

// InTx runs fn with a copy of the table bound to a transaction.
// Nested calls reuse the outer transaction.
func (table *Table[T]) InTx(context context.Context, fn func(tx *Table[T]) error) error {
	if _, inTx := table.q.(*sqlx.Tx); inTx {
		return fn(table)
	}

	return database.WithTx(context, table.db, func(tx *sqlx.Tx) error {
		return fn(&Table[T]{db: table.db, q: tx, spec: table.spec})
	})
}

// # Read Operations

// FindAll returns every row matching the visibility filter.
// An empty orderBy uses the table default.
func (table *Table[T]) FindAll(context context.Context, visibility Visibility, orderBy string) ([]T, error) {
	var where whereBuilder
	if condition, ok := visibility.condition(); ok {
		where.equal(condition)
	}

	query := table.selectClause() + table.fromClause() + where.String() + " ORDER BY " + table.order(orderBy)

	rows := []T{}
	if err := sqlx.SelectContext(context, table.q, &rows, query, where.args...); err != nil {
		return nil, dberr.Wrap(err, table.spec.Resource)
	}

	return rows, nil
}

// FindAllPaginated returns one page filtered only by visibility.
func (table *Table[T]) FindAllPaginated(context context.Context, page, limit int, visibility Visibility) (Page[T], error) {
	return table.FindAllPaginatedWithSearch(context, ListQuery{Page: page, Limit: limit, Visibility: visibility})
}

// FindAllPaginatedWithSearch returns one page plus the total number of rows
// matching every filter in query.
func (table *Table[T]) FindAllPaginatedWithSearch(context context.Context, query ListQuery) (Page[T], error) {
	query = query.normalize()
	where := table.filters(query)

	countQuery := "SELECT COUNT(*)" + table.fromClause() + where.String()

	var total int
	if err := sqlx.GetContext(context, table.q, &total, countQuery, where.args...); err != nil {
		return Page[T]{}, dberr.Wrap(err, table.spec.Resource)
	}

	argCount := len(where.args)
	listQuery := table.selectClause() + table.fromClause() + where.String() +
		" ORDER BY " + table.order("") +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount+1, argCount+2)

	args := append(where.args[:argCount:argCount], query.Limit, pagination.Offset(query.Page, query.Limit))

	rows := []T{}
	if err := sqlx.SelectContext(context, table.q, &rows, listQuery, args...); err != nil {
		return Page[T]{}, dberr.Wrap(err, table.spec.Resource)
	}

	return Page[T]{Data: rows, Total: total, Page: query.Page, Limit: query.Limit}, nil
}

// FindByID returns the row with the given id or a NotFound error.
func (table *Table[T]) FindByID(context context.Context, id int64) (*T, error) {
	return table.FindOne(context, "", Eq("t.id", id))
}

// FindOne returns the first row matching every condition in the given order.
func (table *Table[T]) FindOne(context context.Context, orderBy string, conditions ...Condition) (*T, error) {
	var where whereBuilder
	for _, condition := range conditions {
		where.equal(condition)
	}

	query := table.selectClause() + table.fromClause() + where.String() +
		" ORDER BY " + table.order(orderBy) + " LIMIT 1"

	var row T
	if err := sqlx.GetContext(context, table.q, &row, query, where.args...); err != nil {
		return nil, dberr.Wrap(err, table.spec.Resource)
	}

	return &row, nil
}

// GetFirst returns the lowest-id row for singleton tables.
func (table *Table[T]) GetFirst(context context.Context, visibility Visibility) (*T, error) {
	var conditions []Condition
	if condition, ok := visibility.condition(); ok {
		conditions = append(conditions, condition)
	}
	return table.FindOne(context, "t.id ASC", conditions...)
}

// Count returns the number of rows matching the visibility filter.
func (table *Table[T]) Count(context context.Context, visibility Visibility) (int, error) {
	var where whereBuilder
	if condition, ok := visibility.condition(); ok {
		where.equal(condition)
	}

	var total int
	query := "SELECT COUNT(*) FROM " + table.spec.Table + " t" + where.String()
	if err := sqlx.GetContext(context, table.q, &total, query, where.args...); err != nil {
		return 0, dberr.Wrap(err, table.spec.Resource)
	}

	return total, nil
}

// # Write Operations

// Create inserts a row and returns it re-read with its joins.
// A highlighted row unhighlights every existing row in the same transaction.
func (table *Table[T]) Create(context context.Context, changes Changeset) (*T, error) {
	if err := changes.Err(); err != nil {
		return nil, err
	}

	if !table.highlights(changes) {
		id, err := table.insert(context, changes)
		if err != nil {
			return nil, err
		}
		return table.FindByID(context, id)
	}

	// Clear first: the schema allows a single highlighted row at any time
	var created *T
	err := table.InTx(context, func(tx *Table[T]) error {
		if err := tx.ClearHighlight(context, 0); err != nil {
			return err
		}

		id, err := tx.insert(context, changes)
		if err != nil {
			return err
		}

		created, err = tx.FindByID(context, id)
		return err
	})

	return created, err
}

// Update applies a partial update and returns the refreshed row.
// An empty changeset just reads the row back.
func (table *Table[T]) Update(context context.Context, id int64, changes Changeset) (*T, error) {
	if err := changes.Err(); err != nil {
		return nil, err
	}

	if changes.Len() == 0 {
		return table.FindByID(context, id)
	}

	if !table.highlights(changes) {
		if err := table.update(context, id, changes); err != nil {
			return nil, err
		}
		return table.FindByID(context, id)
	}

	var updated *T
	err := table.InTx(context, func(tx *Table[T]) error {
		if err := tx.ClearHighlight(context, id); err != nil {
			return err
		}

		if err := tx.update(context, id, changes); err != nil {
			return err
		}

		var err error
		updated, err = tx.FindByID(context, id)
		return err
	})

	return updated, err
}

// Delete removes a row and reports whether it existed.
func (table *Table[T]) Delete(context context.Context, id int64) (bool, error) {
	result, err := table.q.ExecContext(context, "DELETE FROM "+table.spec.Table+" WHERE id = $1", id)
	if err != nil {
		return false, dberr.Wrap(err, table.spec.Resource)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dberr.Wrap(err, table.spec.Resource)
	}

	return affected > 0, nil
}

// ClearHighlight unsets is_highlighted on every row except keepID.
func (table *Table[T]) ClearHighlight(context context.Context, keepID int64) error {
	query := "UPDATE " + table.spec.Table + " SET is_highlighted = FALSE WHERE id <> $1 AND is_highlighted = TRUE"
	if _, err := table.q.ExecContext(context, query, keepID); err != nil {
		return dberr.Wrap(err, table.spec.Resource)
	}
	return nil
}

// # Query Assembly

func (table *Table[T]) insert(context context.Context, changes Changeset) (int64, error) {
	query := "INSERT INTO " + table.spec.Table + " DEFAULT VALUES RETURNING id"

	if changes.Len() > 0 {
		placeholders := make([]string, changes.Len())
		for index := range placeholders {
			placeholders[index] = fmt.Sprintf("$%d", index+1)
		}

		query = "INSERT INTO " + table.spec.Table +
			" (" + strings.Join(changes.columns, ", ") + ")" +
			" VALUES (" + strings.Join(placeholders, ", ") + ") RETURNING id"
	}

	var id int64
	if err := sqlx.GetContext(context, table.q, &id, query, changes.values...); err != nil {
		return 0, dberr.Wrap(err, table.spec.Resource)
	}

	return id, nil
}

func (table *Table[T]) update(context context.Context, id int64, changes Changeset) error {
	assignments := make([]string, 0, changes.Len()+1)
	for index, column := range changes.columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, index+1))
	}
	assignments = append(assignments, "updated_at = NOW()")

	query := "UPDATE " + table.spec.Table + " SET " + strings.Join(assignments, ", ") +
		fmt.Sprintf(" WHERE id = $%d", changes.Len()+1)

	args := append(changes.Values(), id)

	result, err := table.q.ExecContext(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, table.spec.Resource)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, table.spec.Resource)
	}

	if affected == 0 {
		return apperr.NotFound(table.spec.Resource)
	}

	return nil
}

func (table *Table[T]) filters(query ListQuery) whereBuilder {
	var where whereBuilder

	if condition, ok := query.Visibility.condition(); ok {
		where.equal(condition)
	}

	if id, ok := query.Category.ID(); ok {
		where.add("t.category_id = $%[1]d", id)
	} else if slug, ok := query.Category.Slug(); ok && table.spec.CategoryTable != "" {
		where.add("c.slug = $%[1]d", slug)
	}

	if term := strings.TrimSpace(query.Search); term != "" && len(table.spec.SearchColumns) > 0 {
		matches := make([]string, len(table.spec.SearchColumns))
		for index, column := range table.spec.SearchColumns {
			if !strings.Contains(column, ".") {
				column = "t." + column
			}
			matches[index] = column + " ILIKE $%[1]d"
		}
		where.add("("+strings.Join(matches, " OR ")+")", searchPattern(term))
	}

	for _, condition := range query.Where {
		where.equal(condition)
	}

	return where
}

func (table *Table[T]) selectClause() string {
	if table.spec.CategoryTable == "" {
		return "SELECT t.*"
	}
	return "SELECT t.*, c.name AS category_name, c.slug AS category_slug"
}

func (table *Table[T]) fromClause() string {
	if table.spec.CategoryTable == "" {
		return " FROM " + table.spec.Table + " t"
	}
	return " FROM " + table.spec.Table + " t LEFT JOIN " + table.spec.CategoryTable + " c ON c.id = t.category_id"
}

// order resolves the ORDER BY clause and ends it on the primary key, so
// rows tied on every listed column keep the same position across pages.
func (table *Table[T]) order(orderBy string) string {
	if orderBy == "" {
		orderBy = table.spec.OrderBy
	}
	if endsOnKey(orderBy) {
		return orderBy
	}
	return orderBy + ", t.id DESC"
}

// endsOnKey reports whether the last ordering term is t.id.
func endsOnKey(orderBy string) bool {
	terms := strings.Split(orderBy, ",")
	last := strings.Fields(terms[len(terms)-1])
	return len(last) > 0 && last[0] == "t.id"
}

func (table *Table[T]) highlights(changes Changeset) bool {
	return table.spec.Highlight && changes.Truthy("is_highlighted")
}

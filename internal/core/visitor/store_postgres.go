// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package visitor

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/dberr"
)

const resourceName = "Visitor"

// PostgresStore implements [Store] with sqlx.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a PostgresStore over db.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

/*
Upsert records one visit.

The unique (ip_address, visited_date) constraint turns a same-day revisit
into an increment.
*/
func (repository *PostgresStore) Upsert(context context.Context, ip, userAgent string, day time.Time) error {
	table := schema.Visitor
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (%[2]s, %[4]s) DO UPDATE SET
			%[5]s = %[1]s.%[5]s + 1,
			%[3]s = EXCLUDED.%[3]s,
			%[6]s = NOW()`,
		table.Table, table.IPAddress, table.UserAgent, table.VisitedDate, table.VisitCount, table.UpdatedAt,
	)

	if _, err := repository.db.ExecContext(context, query, ip, userAgent, day); err != nil {
		return dberr.Wrap(err, resourceName)
	}
	return nil
}

// CountByDay returns distinct IPs per day since from, oldest first.
// Days without visits are absent.
func (repository *PostgresStore) CountByDay(context context.Context, from time.Time) ([]DayCount, error) {
	table := schema.Visitor
	query := fmt.Sprintf(`
		SELECT TO_CHAR(%[2]s, 'YYYY-MM-DD') AS date, COUNT(DISTINCT %[3]s) AS count
		FROM %[1]s
		WHERE %[2]s >= $1
		GROUP BY %[2]s
		ORDER BY %[2]s ASC`,
		table.Table, table.VisitedDate, table.IPAddress,
	)

	counts := []DayCount{}
	if err := repository.db.SelectContext(context, &counts, query, from); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return counts, nil
}

// Totals counts distinct visits since each period start.
func (repository *PostgresStore) Totals(context context.Context, today, weekStart, monthStart time.Time) (Totals, error) {
	table := schema.Visitor
	query := fmt.Sprintf(`
		SELECT
			COUNT(DISTINCT %[3]s) FILTER (WHERE %[2]s = $1)  AS today,
			COUNT(DISTINCT %[3]s) FILTER (WHERE %[2]s >= $2) AS week,
			COUNT(DISTINCT %[3]s) FILTER (WHERE %[2]s >= $3) AS month,
			COUNT(DISTINCT %[3]s)                            AS all_time
		FROM %[1]s`,
		table.Table, table.VisitedDate, table.IPAddress,
	)

	var totals Totals
	if err := repository.db.GetContext(context, &totals, query, today, weekStart, monthStart); err != nil {
		return Totals{}, dberr.Wrap(err, resourceName)
	}
	return totals, nil
}

// AgentsSince groups visitor rows since from by user agent.
func (repository *PostgresStore) AgentsSince(context context.Context, from time.Time) ([]AgentCount, error) {
	table := schema.Visitor
	query := fmt.Sprintf(`
		SELECT COALESCE(%[3]s, '') AS user_agent, COUNT(*) AS count
		FROM %[1]s
		WHERE %[2]s >= $1
		GROUP BY %[3]s`,
		table.Table, table.VisitedDate, table.UserAgent,
	)

	agents := []AgentCount{}
	if err := repository.db.SelectContext(context, &agents, query, from); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return agents, nil
}

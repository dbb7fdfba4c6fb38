// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/dberr"
)

const resourceName = "Setting"

// PostgresStore implements [Store] with sqlx.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a PostgresStore over db.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// List returns every setting ordered by key.
func (repository *PostgresStore) List(context context.Context) ([]Setting, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY %s ASC`, schema.Setting.Table, schema.Setting.Key)

	settings := []Setting{}
	if err := repository.db.SelectContext(context, &settings, query); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return settings, nil
}

// Get returns the setting stored under key.
func (repository *PostgresStore) Get(context context.Context, key string) (*Setting, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, schema.Setting.Table, schema.Setting.Key)

	var setting Setting
	if err := repository.db.GetContext(context, &setting, query, key); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return &setting, nil
}

/*
Upsert writes every entry in one transaction.

A conflicting key has its value replaced; its description is replaced only
when one is given.
*/
func (repository *PostgresStore) Upsert(context context.Context, entries []Entry) ([]Setting, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%[2]s) DO UPDATE SET
			%[3]s = EXCLUDED.%[3]s,
			%[4]s = COALESCE(EXCLUDED.%[4]s, %[1]s.%[4]s),
			%[5]s = NOW()
		RETURNING *`,
		schema.Setting.Table, schema.Setting.Key, schema.Setting.Value,
		schema.Setting.Description, schema.Setting.UpdatedAt,
	)

	saved := make([]Setting, 0, len(entries))
	err := database.WithTx(context, repository.db, func(tx *sqlx.Tx) error {
		for _, entry := range entries {
			var setting Setting
			if err := tx.GetContext(context, &setting, query, entry.Key, entry.Value, entry.Description); err != nil {
				return dberr.Wrap(err, resourceName)
			}
			saved = append(saved, setting)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete reports whether a row was removed.
func (repository *PostgresStore) Delete(context context.Context, key string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Setting.Table, schema.Setting.Key)

	result, err := repository.db.ExecContext(context, query, key)
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, dberr.Wrap(err, resourceName)
	}
	return affected > 0, nil
}

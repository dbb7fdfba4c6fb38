// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package database provides the managed PostgreSQL connection pool for Beacon.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It owns the single
// [*sqlx.DB] handle (pgx through its database/sql adapter) that main.go creates
// at startup and injects into every store. Nothing else opens connections.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/constants"
)

// DriverName is the database/sql driver registered by pgx's stdlib package.
// sqlx derives $n bind variables from it.
const DriverName = "pgx"

// Opinionated pool settings for the Beacon workload.
const (
	// maxConnLifetime ensures connections are periodically recycled.
	maxConnLifetime = 60 * time.Minute
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// Open creates and validates a new PostgreSQL connection pool.
//
// # Parameters
//   - ctx: Context for the initial connectivity check.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - maxConns: Upper bound of open connections.
//   - logger: Structured logger for pool-level events.
func Open(ctx context.Context, dsn string, maxConns int, logger *slog.Logger) (*sqlx.DB, error) {
	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database: invalid DSN: %w", err)
	}
	connConfig.ConnectTimeout = connectTimeout

	// Set a per-connection statement timeout to avoid runaway queries.
	afterConnect := stdlib.OptionAfterConnect(func(ctx context.Context, connection *pgx.Conn) error {
		timeoutQuery := fmt.Sprintf("SET statement_timeout = '%ds'", int(constants.GlobalRequestTimeout.Seconds()))
		_, err := connection.Exec(ctx, timeoutQuery)
		return err
	})

	db := sqlx.NewDb(stdlib.OpenDB(*connConfig, afterConnect), DriverName)

	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(max(1, maxConns/2))
	db.SetConnMaxLifetime(maxConnLifetime)
	db.SetConnMaxIdleTime(maxConnIdleTime)

	// Validate that we can actually reach the database.
	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.Int("max_conns", maxConns),
		slog.String("database", connConfig.Database),
	)

	return db, nil
}

// Ping verifies that the PostgreSQL connection pool is healthy.
func Ping(ctx context.Context, db *sqlx.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}

	return nil
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back on error or panic.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin transaction: %w", err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			_ = tx.Rollback()
			panic(recovered)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit transaction: %w", err)
	}

	return nil
}

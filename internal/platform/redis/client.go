// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the optional shared cache.

Beacon only keeps counters there that every API replica must agree on, such
as failed login attempts. Without REDIS_URL the callers use in-process state,
so nothing in this package runs.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = 2 * time.Second
	pingTimeout = 2 * time.Second
)

// Options configures [Connect].
type Options struct {
	// URL is a redis:// or rediss:// connection string.
	URL string
	// PoolSize caps open connections; zero keeps the go-redis default.
	PoolSize int
}

// Connect dials the cache and pings it before returning.
func Connect(context stdctx.Context, opts Options, logger *slog.Logger) (*redis.Client, error) {
	options, err := clientOptions(opts)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

func clientOptions(opts Options) (*redis.Options, error) {
	options, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	if opts.PoolSize > 0 {
		options.PoolSize = opts.PoolSize
		options.MaxIdleConns = max(opts.PoolSize/2, 1)
	}
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	return options, nil
}

// Ping fails when the cache does not answer within two seconds.
func Ping(context stdctx.Context, client redis.UniversalClient) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

// Checker adapts [Ping] to a readiness probe.
func Checker(client redis.UniversalClient) func(stdctx.Context) error {
	return func(context stdctx.Context) error {
		return Ping(context, client)
	}
}

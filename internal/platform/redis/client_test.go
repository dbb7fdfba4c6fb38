// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestClientOptions applies the pool size and timeouts on top of the URL.
*/
func TestClientOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		pool     int
		maxIdle  int
		database int
	}{
		{"sized pool", Options{URL: "redis://cache:6379/2", PoolSize: 8}, 8, 4, 2},
		{"single connection", Options{URL: "redis://cache:6379", PoolSize: 1}, 1, 1, 0},
		{"library default", Options{URL: "redis://cache:6379"}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, err := clientOptions(tt.opts)
			require.NoError(t, err)

			assert.Equal(t, "cache:6379", options.Addr)
			assert.Equal(t, tt.pool, options.PoolSize)
			assert.Equal(t, tt.maxIdle, options.MaxIdleConns)
			assert.Equal(t, tt.database, options.DB)
			assert.Equal(t, 2*time.Second, options.ReadTimeout)
		})
	}
}

/*
TestConnect_InvalidURL fails before dialing.
*/
func TestConnect_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := Connect(context.Background(), Options{URL: "http://cache"}, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: invalid URL")
}

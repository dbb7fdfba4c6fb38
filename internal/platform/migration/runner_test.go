// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/beacon/internal/platform/migration"
)

func TestPgx5URL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/beacon?sslmode=disable", "pgx5://u:p@db:5432/beacon?sslmode=disable"},
		{"postgresql://db/beacon", "pgx5://db/beacon"},
		{"pgx5://db/beacon", "pgx5://db/beacon"},
		{"host=db dbname=beacon", "host=db dbname=beacon"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.Pgx5URL(tt.in))
	}
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the random identifiers used outside the database:
request correlation ids and collision-proof suffixes for uploaded file names.

Primary keys are database sequences and never come from here.
*/
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, falling back to v4 when the
// clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Short returns n lowercase hex characters of a random v4 UUID (max 32).
func Short(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n <= 0 || n > len(raw) {
		return raw
	}
	return raw[:n]
}

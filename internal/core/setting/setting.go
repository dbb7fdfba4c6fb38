// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package setting manages site-wide key/value settings such as the contact
email or social links.

Public readers get a flat key to value map. Admins upsert keys one at a
time or in bulk; a bulk write is all-or-nothing.
*/
package setting

import (
	"context"
	"time"
)

// Setting is one key/value site setting.
type Setting struct {
	ID          int64     `db:"id"          json:"id"`
	Key         string    `db:"key"         json:"key"`
	Value       *string   `db:"value"       json:"value"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updated_at"`
}

// Entry is one key in an upsert request. A nil description keeps the
// stored one.
type Entry struct {
	Key         string  `json:"key"         validate:"required,max=255"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

// Store persists settings.
type Store interface {
	List(context context.Context) ([]Setting, error)
	Get(context context.Context, key string) (*Setting, error)
	Upsert(context context.Context, entries []Entry) ([]Setting, error)
	Delete(context context.Context, key string) (bool, error)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package program manages the organisation's programs. At most one program
// is highlighted on the homepage at a time.
package program

import (
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
	"github.com/taibuivan/beacon/pkg/slug"
)

// Program is an initiative run by the organisation.
type Program struct {
	crud.Base
	Title         string  `db:"title"          json:"title"`
	Slug          *string `db:"slug"           json:"slug"`
	Description   *string `db:"description"    json:"description"`
	Content       *string `db:"content"        json:"content"`
	ImageURL      *string `db:"image_url"      json:"image_url"`
	CategoryID    *int64  `db:"category_id"    json:"category_id"`
	IsHighlighted bool    `db:"is_highlighted" json:"is_highlighted"`
	OrderPosition int     `db:"order_position" json:"order_position"`

	CategoryName *string `db:"category_name" json:"category_name"`
	CategorySlug *string `db:"category_slug" json:"category_slug"`
}

// Input is the create and update payload of a program.
type Input struct {
	Title         optional.Value[string]       `json:"title"          validate:"omitempty,max=255"`
	Slug          optional.Value[string]       `json:"slug"           validate:"omitempty,max=255"`
	Description   optional.Value[string]       `json:"description"`
	Content       optional.Value[string]       `json:"content"`
	ImageURL      optional.Value[string]       `json:"image_url"      validate:"omitempty,max=2048"`
	CategoryID    optional.Value[int64]        `json:"category_id"    validate:"omitempty,min=1"`
	IsHighlighted optional.Value[convert.Bool] `json:"is_highlighted"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	if raw, ok := input.Slug.Get(); ok {
		changes.Set("slug", slug.From(raw))
	} else {
		changes.SetField("slug", input.Slug)
	}
	changes.SetField("description", input.Description)
	changes.SetField("content", input.Content)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("category_id", input.CategoryID)
	changes.SetField("is_highlighted", input.IsHighlighted)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("title", input.Title)
	return validator.Err()
}

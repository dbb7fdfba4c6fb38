// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package category manages the article, program and gallery category tables.
package category

import (
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
	"github.com/taibuivan/beacon/pkg/slug"
)

// Kind describes one category family and the table that references it.
type Kind struct {
	Table     string
	Items     string
	ItemsNoun string
}

var (
	Article = Kind{Table: schema.ArticleCategories, Items: schema.Articles, ItemsNoun: "articles"}
	Program = Kind{Table: schema.ProgramCategories, Items: schema.Programs, ItemsNoun: "programs"}
	Gallery = Kind{Table: schema.GalleryCategories, Items: schema.GalleryItems, ItemsNoun: "gallery items"}
)

// Category groups articles, programs or gallery items.
type Category struct {
	crud.Base
	Name          string  `db:"name"           json:"name"`
	Slug          string  `db:"slug"           json:"slug"`
	Description   *string `db:"description"    json:"description"`
	OrderPosition int     `db:"order_position" json:"order_position"`
}

// Input is the create and update payload.
type Input struct {
	Name          optional.Value[string]       `json:"name"           validate:"omitempty,max=255"`
	Slug          optional.Value[string]       `json:"slug"           validate:"omitempty,max=255"`
	Description   optional.Value[string]       `json:"description"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

const (
	FieldName = "name"
	FieldSlug = "slug"
)

// Changes implements crud.Input. Explicit slugs are normalised.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField(FieldName, input.Name)

	if raw, ok := input.Slug.Get(); ok {
		changes.Set(FieldSlug, slug.From(raw))
	}

	changes.SetField("description", input.Description)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate implements crud.CreateChecker.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText(FieldName, input.Name)
	return validator.Err()
}

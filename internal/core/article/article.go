// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package article manages news articles: unique slugs, view counting and
// category or text filtered listings.
package article

import (
	"time"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// Article is a published news item.
type Article struct {
	crud.Base
	Title       string    `db:"title"        json:"title"`
	Slug        string    `db:"slug"         json:"slug"`
	Excerpt     *string   `db:"excerpt"      json:"excerpt"`
	Content     *string   `db:"content"      json:"content"`
	ImageURL    *string   `db:"image_url"    json:"image_url"`
	Author      *string   `db:"author"       json:"author"`
	CategoryID  *int64    `db:"category_id"  json:"category_id"`
	ViewCount   int       `db:"view_count"   json:"view_count"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`

	// Joined from article_categories
	CategoryName *string `db:"category_name" json:"category_name"`
	CategorySlug *string `db:"category_slug" json:"category_slug"`
}

// Input is the create and update payload.
type Input struct {
	Title       optional.Value[string]            `json:"title"        validate:"omitempty,max=255"`
	Slug        optional.Value[string]            `json:"slug"         validate:"omitempty,max=255"`
	Excerpt     optional.Value[string]            `json:"excerpt"`
	Content     optional.Value[string]            `json:"content"`
	ImageURL    optional.Value[string]            `json:"image_url"    validate:"omitempty,max=2048"`
	Author      optional.Value[string]            `json:"author"       validate:"omitempty,max=255"`
	CategoryID  optional.Value[int64]             `json:"category_id"  validate:"omitempty,min=1"`
	PublishedAt optional.Value[convert.Timestamp] `json:"published_at"`
	IsActive    optional.Value[convert.Bool]      `json:"is_active"`
}

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldPublishedAt = "published_at"
)

// Changes implements crud.Input. The slug is resolved by the service.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField(FieldTitle, input.Title)
	changes.SetField("excerpt", input.Excerpt)
	changes.SetField("content", input.Content)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("author", input.Author)
	changes.SetField("category_id", input.CategoryID)
	changes.SetField(FieldPublishedAt, input.PublishedAt)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate implements crud.CreateChecker.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText(FieldTitle, input.Title)
	return validator.Err()
}

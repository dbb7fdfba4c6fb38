// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package section manages the singleton homepage sections.

Each section lives in its own table and is logically a single row: reads
return the first row by id, and saves target that row (or id 1 when the
table is still empty). Saving an empty table is a no-op that returns no
data; the row must be created first with an explicit create call.
*/
package section

import (
	"github.com/jmoiron/sqlx/types"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// # Hero

// Hero is the homepage banner.
type Hero struct {
	crud.Base
	Title           *string `db:"title"            json:"title"`
	Subtitle        *string `db:"subtitle"         json:"subtitle"`
	Description     *string `db:"description"      json:"description"`
	BackgroundImage *string `db:"background_image" json:"background_image"`
	ButtonText      *string `db:"button_text"      json:"button_text"`
	ButtonLink      *string `db:"button_link"      json:"button_link"`
}

// HeroInput is the create and update payload of Hero.
type HeroInput struct {
	Title           optional.Value[string]       `json:"title"            validate:"omitempty,max=255"`
	Subtitle        optional.Value[string]       `json:"subtitle"`
	Description     optional.Value[string]       `json:"description"`
	BackgroundImage optional.Value[string]       `json:"background_image" validate:"omitempty,max=2048"`
	ButtonText      optional.Value[string]       `json:"button_text"      validate:"omitempty,max=255"`
	ButtonLink      optional.Value[string]       `json:"button_link"`
	IsActive        optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input HeroInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("description", input.Description)
	changes.SetField("background_image", input.BackgroundImage)
	changes.SetField("button_text", input.ButtonText)
	changes.SetField("button_link", input.ButtonLink)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # Vision

// Vision holds the mission and vision statements.
type Vision struct {
	crud.Base
	Title    *string `db:"title"     json:"title"`
	Vision   *string `db:"vision"    json:"vision"`
	Mission  *string `db:"mission"   json:"mission"`
	ImageURL *string `db:"image_url" json:"image_url"`
}

// VisionInput is the create and update payload of Vision.
type VisionInput struct {
	Title    optional.Value[string]       `json:"title"     validate:"omitempty,max=255"`
	Vision   optional.Value[string]       `json:"vision"`
	Mission  optional.Value[string]       `json:"mission"`
	ImageURL optional.Value[string]       `json:"image_url" validate:"omitempty,max=2048"`
	IsActive optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input VisionInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("vision", input.Vision)
	changes.SetField("mission", input.Mission)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # Statistics

// Statistics keeps its figures as a free-form JSON array, e.g.
// [{"label": "Children supported", "value": "1,200+"}].
type Statistics struct {
	crud.Base
	Title    *string        `db:"title"    json:"title"`
	Subtitle *string        `db:"subtitle" json:"subtitle"`
	Stats    types.JSONText `db:"stats"    json:"stats"`
}

// StatisticsInput is the create and update payload of Statistics.
type StatisticsInput struct {
	Title    optional.Value[string]         `json:"title"    validate:"omitempty,max=255"`
	Subtitle optional.Value[string]         `json:"subtitle"`
	Stats    optional.Value[types.JSONText] `json:"stats"`
	IsActive optional.Value[convert.Bool]   `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input StatisticsInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("stats", input.Stats)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # Call To Action

// CTA backs both the donation and the closing call-to-action blocks.
type CTA struct {
	crud.Base
	Title       *string `db:"title"       json:"title"`
	Subtitle    *string `db:"subtitle"    json:"subtitle"`
	Description *string `db:"description" json:"description"`
	ButtonText  *string `db:"button_text" json:"button_text"`
	ButtonLink  *string `db:"button_link" json:"button_link"`
	ImageURL    *string `db:"image_url"   json:"image_url"`
}

// CTAInput is the create and update payload of CTA.
type CTAInput struct {
	Title       optional.Value[string]       `json:"title"       validate:"omitempty,max=255"`
	Subtitle    optional.Value[string]       `json:"subtitle"`
	Description optional.Value[string]       `json:"description"`
	ButtonText  optional.Value[string]       `json:"button_text" validate:"omitempty,max=255"`
	ButtonLink  optional.Value[string]       `json:"button_link"`
	ImageURL    optional.Value[string]       `json:"image_url"   validate:"omitempty,max=2048"`
	IsActive    optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input CTAInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("description", input.Description)
	changes.SetField("button_text", input.ButtonText)
	changes.SetField("button_link", input.ButtonLink)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # Impact

// Impact describes the results the organisation achieved.
type Impact struct {
	crud.Base
	Title       *string `db:"title"       json:"title"`
	Subtitle    *string `db:"subtitle"    json:"subtitle"`
	Description *string `db:"description" json:"description"`
	ImageURL    *string `db:"image_url"   json:"image_url"`
}

// ImpactInput is the create and update payload of Impact.
type ImpactInput struct {
	Title       optional.Value[string]       `json:"title"       validate:"omitempty,max=255"`
	Subtitle    optional.Value[string]       `json:"subtitle"`
	Description optional.Value[string]       `json:"description"`
	ImageURL    optional.Value[string]       `json:"image_url"   validate:"omitempty,max=2048"`
	IsActive    optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input ImpactInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("description", input.Description)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # Heading

// Heading is the title block shown above a homepage list (programs,
// partners, FAQ, contact, leadership).
type Heading struct {
	crud.Base
	Title       *string `db:"title"       json:"title"`
	Subtitle    *string `db:"subtitle"    json:"subtitle"`
	Description *string `db:"description" json:"description"`
}

// HeadingInput is the create and update payload of Heading.
type HeadingInput struct {
	Title       optional.Value[string]       `json:"title"       validate:"omitempty,max=255"`
	Subtitle    optional.Value[string]       `json:"subtitle"`
	Description optional.Value[string]       `json:"description"`
	IsActive    optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input HeadingInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("description", input.Description)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// # History

// History tells the story of the organisation.
type History struct {
	crud.Base
	Title    *string `db:"title"     json:"title"`
	Subtitle *string `db:"subtitle"  json:"subtitle"`
	Content  *string `db:"content"   json:"content"`
	ImageURL *string `db:"image_url" json:"image_url"`
}

// HistoryInput is the create and update payload of History.
type HistoryInput struct {
	Title    optional.Value[string]       `json:"title"     validate:"omitempty,max=255"`
	Subtitle optional.Value[string]       `json:"subtitle"`
	Content  optional.Value[string]       `json:"content"`
	ImageURL optional.Value[string]       `json:"image_url" validate:"omitempty,max=2048"`
	IsActive optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input HistoryInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("subtitle", input.Subtitle)
	changes.SetField("content", input.Content)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("is_active", input.IsActive)
	return changes
}

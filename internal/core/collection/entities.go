// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// # Award

// Award is a recognition the organisation received.
type Award struct {
	crud.Base
	Title         string  `db:"title"          json:"title"`
	Description   *string `db:"description"    json:"description"`
	Year          *int    `db:"year"           json:"year"`
	ImageURL      *string `db:"image_url"      json:"image_url"`
	Issuer        *string `db:"issuer"         json:"issuer"`
	OrderPosition int     `db:"order_position" json:"order_position"`
}

// AwardInput is the create and update payload of Award.
type AwardInput struct {
	Title         optional.Value[string]       `json:"title"          validate:"omitempty,max=255"`
	Description   optional.Value[string]       `json:"description"`
	Year          optional.Value[int]          `json:"year"           validate:"omitempty,min=1900,max=2100"`
	ImageURL      optional.Value[string]       `json:"image_url"      validate:"omitempty,max=2048"`
	Issuer        optional.Value[string]       `json:"issuer"         validate:"omitempty,max=255"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input AwardInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("description", input.Description)
	changes.SetField("year", input.Year)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("issuer", input.Issuer)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input AwardInput) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("title", input.Title)
	return validator.Err()
}

// # Merchandise

// Merchandise is an item sold to support the organisation.
type Merchandise struct {
	crud.Base
	Name          string   `db:"name"           json:"name"`
	Description   *string  `db:"description"    json:"description"`
	Price         *float64 `db:"price"          json:"price"`
	ImageURL      *string  `db:"image_url"      json:"image_url"`
	PurchaseURL   *string  `db:"purchase_url"   json:"purchase_url"`
	OrderPosition int      `db:"order_position" json:"order_position"`
}

// MerchandiseInput is the create and update payload of Merchandise.
type MerchandiseInput struct {
	Name          optional.Value[string]       `json:"name"           validate:"omitempty,max=255"`
	Description   optional.Value[string]       `json:"description"`
	Price         optional.Value[float64]      `json:"price"          validate:"omitempty,min=0"`
	ImageURL      optional.Value[string]       `json:"image_url"      validate:"omitempty,max=2048"`
	PurchaseURL   optional.Value[string]       `json:"purchase_url"   validate:"omitempty,url"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input MerchandiseInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("name", input.Name)
	changes.SetField("description", input.Description)
	changes.SetField("price", input.Price)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("purchase_url", input.PurchaseURL)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input MerchandiseInput) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("name", input.Name)
	return validator.Err()
}

// # Partner

// Partner is a sponsor or partner organisation shown on the site.
type Partner struct {
	crud.Base
	Name          string  `db:"name"           json:"name"`
	LogoURL       *string `db:"logo_url"       json:"logo_url"`
	WebsiteURL    *string `db:"website_url"    json:"website_url"`
	Description   *string `db:"description"    json:"description"`
	OrderPosition int     `db:"order_position" json:"order_position"`
}

// PartnerInput is the create and update payload of Partner.
type PartnerInput struct {
	Name          optional.Value[string]       `json:"name"           validate:"omitempty,max=255"`
	LogoURL       optional.Value[string]       `json:"logo_url"       validate:"omitempty,max=2048"`
	WebsiteURL    optional.Value[string]       `json:"website_url"    validate:"omitempty,url"`
	Description   optional.Value[string]       `json:"description"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input PartnerInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("name", input.Name)
	changes.SetField("logo_url", input.LogoURL)
	changes.SetField("website_url", input.WebsiteURL)
	changes.SetField("description", input.Description)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input PartnerInput) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("name", input.Name)
	return validator.Err()
}

// # FAQ

// FAQ is one question and answer pair.
type FAQ struct {
	crud.Base
	Question      string `db:"question"       json:"question"`
	Answer        string `db:"answer"         json:"answer"`
	OrderPosition int    `db:"order_position" json:"order_position"`
}

// FAQInput is the create and update payload of FAQ.
type FAQInput struct {
	Question      optional.Value[string]       `json:"question"`
	Answer        optional.Value[string]       `json:"answer"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input FAQInput) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("question", input.Question)
	changes.SetField("answer", input.Answer)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input FAQInput) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("question", input.Question).RequiredText("answer", input.Answer)
	return validator.Err()
}

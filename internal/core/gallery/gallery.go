// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package gallery manages photo gallery items, newest gallery date first.
package gallery

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// Item is one photo of the gallery.
type Item struct {
	crud.Base
	Title         string     `db:"title"          json:"title"`
	Description   *string    `db:"description"    json:"description"`
	ImageURL      string     `db:"image_url"      json:"image_url"`
	CategoryID    *int64     `db:"category_id"    json:"category_id"`
	GalleryDate   *time.Time `db:"gallery_date"   json:"gallery_date"`
	OrderPosition int        `db:"order_position" json:"order_position"`

	CategoryName *string `db:"category_name" json:"category_name"`
	CategorySlug *string `db:"category_slug" json:"category_slug"`
}

// Input is the create and update payload of a gallery item.
type Input struct {
	Title         optional.Value[string]            `json:"title"          validate:"omitempty,max=255"`
	Description   optional.Value[string]            `json:"description"`
	ImageURL      optional.Value[string]            `json:"image_url"      validate:"omitempty,max=2048"`
	CategoryID    optional.Value[int64]             `json:"category_id"    validate:"omitempty,min=1"`
	GalleryDate   optional.Value[convert.Timestamp] `json:"gallery_date"`
	OrderPosition optional.Value[int]               `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool]      `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("title", input.Title)
	changes.SetField("description", input.Description)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("category_id", input.CategoryID)
	changes.SetField("gallery_date", input.GalleryDate)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("title", input.Title).RequiredText("image_url", input.ImageURL)
	return validator.Err()
}

// Service is the gallery CRUD service.
type Service = crud.Service[Item, Input]

// NewService wires the service to its tables.
func NewService(db *sqlx.DB) *Service {
	table := crud.NewTable[Item](db, crud.Spec{
		Table:         schema.GalleryItems,
		Resource:      "Gallery item",
		CategoryTable: schema.GalleryCategories,
		SearchColumns: []string{"title", "description"},
		OrderBy:       "t.gallery_date DESC NULLS LAST, t.created_at DESC",
	})
	return crud.NewService[Item, Input](table)
}

// Handler serves the gallery endpoints.
type Handler struct {
	resource *crud.Resource[Item, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{resource: crud.NewResource[Item, Input](service, "Gallery item", "Gallery items")}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	handler.resource.PublicRoutes(router)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	handler.resource.AdminRoutes(router)
}

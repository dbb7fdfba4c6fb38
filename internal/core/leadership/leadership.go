// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package leadership manages leadership team bios.
//
// Like programs, at most one member is highlighted. Deleting the highlighted
// member does not promote another one; the team simply has no highlight
// until an admin picks a new member.
package leadership

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/optional"
)

// Member is one person of the leadership team.
type Member struct {
	crud.Base
	Name          string  `db:"name"           json:"name"`
	Position      *string `db:"position"       json:"position"`
	Bio           *string `db:"bio"            json:"bio"`
	ImageURL      *string `db:"image_url"      json:"image_url"`
	Email         *string `db:"email"          json:"email"`
	LinkedInURL   *string `db:"linkedin_url"   json:"linkedin_url"`
	IsHighlighted bool    `db:"is_highlighted" json:"is_highlighted"`
	OrderPosition int     `db:"order_position" json:"order_position"`
}

// Input is the create and update payload of a leadership member.
type Input struct {
	Name          optional.Value[string]       `json:"name"           validate:"omitempty,max=255"`
	Position      optional.Value[string]       `json:"position"       validate:"omitempty,max=255"`
	Bio           optional.Value[string]       `json:"bio"`
	ImageURL      optional.Value[string]       `json:"image_url"      validate:"omitempty,max=2048"`
	Email         optional.Value[string]       `json:"email"          validate:"omitempty,email"`
	LinkedInURL   optional.Value[string]       `json:"linkedin_url"   validate:"omitempty,url"`
	IsHighlighted optional.Value[convert.Bool] `json:"is_highlighted"`
	OrderPosition optional.Value[int]          `json:"order_position" validate:"omitempty,min=0"`
	IsActive      optional.Value[convert.Bool] `json:"is_active"`
}

// Changes lists the columns present in the request.
func (input Input) Changes() crud.Changeset {
	var changes crud.Changeset
	changes.SetField("name", input.Name)
	changes.SetField("position", input.Position)
	changes.SetField("bio", input.Bio)
	changes.SetField("image_url", input.ImageURL)
	changes.SetField("email", input.Email)
	changes.SetField("linkedin_url", input.LinkedInURL)
	changes.SetField("is_highlighted", input.IsHighlighted)
	changes.SetField("order_position", input.OrderPosition)
	changes.SetField("is_active", input.IsActive)
	return changes
}

// ValidateCreate checks the fields required on insert.
func (input Input) ValidateCreate() error {
	validator := &validate.Validator{}
	validator.RequiredText("name", input.Name)
	return validator.Err()
}

// # Service

// Service holds the leadership business rules.
type Service struct {
	*crud.Service[Member, Input]
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB) *Service {
	table := crud.NewTable[Member](db, crud.Spec{
		Table:         schema.Leadership,
		Resource:      "Leadership member",
		SearchColumns: []string{"name", "position"},
		Highlight:     true,
	})
	return &Service{Service: crud.NewService[Member, Input](table)}
}

// Highlighted returns the active highlighted member.
func (service *Service) Highlighted(context context.Context) (*Member, error) {
	return service.Table().FindOne(context, "",
		crud.Eq("t.is_highlighted", true),
		crud.Eq("t.is_active", true),
	)
}

// # HTTP

// Handler serves the leadership endpoints.
type Handler struct {
	service  *Service
	resource *crud.Resource[Member, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		resource: crud.NewResource[Member, Input](service, "Leadership member", "Leadership members"),
	}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/", handler.resource.ListPublic)
	router.Get("/highlighted", handler.highlighted)
	router.Get("/{id}", handler.resource.GetPublic)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	handler.resource.AdminRoutes(router)
}

func (handler *Handler) highlighted(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.service.Highlighted(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Highlighted leadership member retrieved successfully", member)
}

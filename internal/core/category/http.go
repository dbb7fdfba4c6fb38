// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Handler serves the category endpoints.
type Handler struct {
	service  *Service
	resource *crud.Resource[Category, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		resource: crud.NewResource[Category, Input](service, "Category", "Categories"),
	}
}

// PublicRoutes serves the full active list, unpaginated, for filter menus.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/", handler.listActive)
	router.Get("/{id}", handler.resource.GetPublic)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	handler.resource.AdminRoutes(router)
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.All(request.Context(), crud.ActiveOnly)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Categories retrieved successfully", categories)
}

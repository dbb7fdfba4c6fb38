// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Handler serves the program endpoints.
type Handler struct {
	service  *Service
	resource *crud.Resource[Program, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		resource: crud.NewResource[Program, Input](service, "Program", "Programs"),
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
	program, err := handler.service.Highlighted(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Highlighted program retrieved successfully", program)
}

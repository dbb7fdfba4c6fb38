// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/crud"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/pkg/convert"
)

// Handler serves the contact endpoints.
type Handler struct {
	service  *Service
	resource *crud.Resource[Message, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		resource: crud.NewResource[Message, Input](service, "Contact message", "Contact messages"),
	}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Post("/", handler.submit)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/{id}", handler.read)
	router.Put("/{id}/read", handler.markRead)
	router.Delete("/{id}", handler.resource.Delete)
}

/*
POST /api/contact

Request body:
  - name, email, message: required
  - phone, subject: optional

Response:
  - 201: the stored message
  - 400: validation failure
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.Decode(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Message sent successfully", message)
}

// list is the admin inbox. is_read=true|false narrows it.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := crud.ParseListQuery(request, crud.AnyState)
	if raw := request.URL.Query().Get("is_read"); raw != "" {
		query.Where = append(query.Where, crud.Eq("t.is_read", convert.ToBool(raw)))
	}

	page, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Contact messages retrieved successfully", page.Data, page.Meta())
}

// read returns one message and marks it read.
func (handler *Handler) read(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Read(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Contact message retrieved successfully", message)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.MarkRead(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Contact message marked as read", message)
}

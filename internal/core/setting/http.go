// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Handler serves the setting endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/", handler.values)
	router.Get("/{key}", handler.get)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Put("/", handler.putAll)
	router.Get("/{key}", handler.get)
	router.Put("/{key}", handler.put)
	router.Delete("/{key}", handler.delete)
}

// values returns {key: value} for the public site.
func (handler *Handler) values(writer http.ResponseWriter, request *http.Request) {
	values, err := handler.service.Map(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Settings retrieved successfully", values)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Settings retrieved successfully", settings)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	setting, err := handler.service.Get(request.Context(), requestutil.Param(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Setting retrieved successfully", setting)
}

/*
PUT /api/admin/settings/{key}

Request body:
  - value: string or null
  - description: optional
*/
func (handler *Handler) put(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Value       *string `json:"value"`
		Description *string `json:"description"`
	}
	if err := requestutil.Decode(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	setting, err := handler.service.Put(request.Context(), Entry{
		Key:         requestutil.Param(request, "key"),
		Value:       body.Value,
		Description: body.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Setting saved successfully", setting)
}

/*
PUT /api/admin/settings

Request body:
  - settings: [{key, value, description?}]
*/
func (handler *Handler) putAll(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Settings []Entry `json:"settings" validate:"dive"`
	}
	if err := requestutil.Decode(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	settings, err := handler.service.PutAll(request.Context(), body.Settings)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Settings saved successfully", settings)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "key")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Setting deleted successfully", nil)
}

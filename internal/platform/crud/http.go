// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/pkg/pagination"
)

// Operations is what a [Resource] needs from its service. [Service]
// implements it; entity services embed [Service] and override what differs.
type Operations[T any, I Input] interface {
	List(context context.Context, query ListQuery) (Page[T], error)
	Get(context context.Context, id int64) (*T, error)
	GetVisible(context context.Context, id int64) (*T, error)
	Create(context context.Context, input I) (*T, error)
	Update(context context.Context, id int64, input I) (*T, error)
	Delete(context context.Context, id int64) error
}

// Resource serves the standard REST endpoints of one entity.
//
// Public routes only ever see active rows. Admin routes see everything and
// accept an is_active query filter.
type Resource[T any, I Input] struct {
	service  Operations[T, I]
	singular string
	plural   string
}

// NewResource builds the HTTP layer for a service. The names are used in
// response messages, e.g. "Articles retrieved successfully".
func NewResource[T any, I Input](service Operations[T, I], singular, plural string) *Resource[T, I] {
	return &Resource[T, I]{
		service:  service,
		singular: singular,
		plural:   plural,
	}
}

// PublicRoutes mounts GET / and GET /{id}.
func (resource *Resource[T, I]) PublicRoutes(router chi.Router) {
	router.Get("/", resource.ListPublic)
	router.Get("/{id}", resource.GetPublic)
}

// AdminRoutes mounts the full read/write surface.
func (resource *Resource[T, I]) AdminRoutes(router chi.Router) {
	router.Get("/", resource.ListAdmin)
	router.Get("/{id}", resource.GetAdmin)
	router.Post("/", resource.Create)
	router.Put("/{id}", resource.Update)
	router.Delete("/{id}", resource.Delete)
}

// ParseListQuery reads page, limit, category and search from the query string.
func ParseListQuery(request *http.Request, visibility Visibility) ListQuery {
	params := pagination.FromRequest(request)
	values := request.URL.Query()

	return ListQuery{
		Page:       params.Page,
		Limit:      params.Limit,
		Visibility: visibility,
		Category:   ParseCategoryRef(values.Get("category")),
		Search:     values.Get("search"),
	}
}

// AdminVisibility reads the optional is_active filter of admin listings.
func AdminVisibility(request *http.Request) Visibility {
	return ParseVisibility(request.URL.Query().Get("is_active"))
}

// # Handlers

/*
ListPublic returns active rows, paginated and filtered.

Response:
  - 200: []T with pagination
*/
func (resource *Resource[T, I]) ListPublic(writer http.ResponseWriter, request *http.Request) {
	resource.list(writer, request, ParseListQuery(request, ActiveOnly))
}

// ListAdmin returns every row, optionally filtered by is_active.
func (resource *Resource[T, I]) ListAdmin(writer http.ResponseWriter, request *http.Request) {
	resource.list(writer, request, ParseListQuery(request, AdminVisibility(request)))
}

func (resource *Resource[T, I]) list(writer http.ResponseWriter, request *http.Request, query ListQuery) {
	page, err := resource.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, resource.plural+" retrieved successfully", page.Data, page.Meta())
}

/*
GetPublic returns one active row.

Response:
  - 200: T
  - 404: missing or inactive
*/
func (resource *Resource[T, I]) GetPublic(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := resource.service.GetVisible(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resource.singular+" retrieved successfully", row)
}

// GetAdmin returns one row regardless of visibility.
func (resource *Resource[T, I]) GetAdmin(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := resource.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resource.singular+" retrieved successfully", row)
}

/*
Create decodes, validates and inserts a row.

Response:
  - 201: T
  - 400: validation failure
*/
func (resource *Resource[T, I]) Create(writer http.ResponseWriter, request *http.Request) {
	var input I
	if err := requestutil.Decode(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := resource.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, resource.singular+" created successfully", row)
}

/*
Update applies the fields present in the body.

Response:
  - 200: T
  - 404: unknown id
*/
func (resource *Resource[T, I]) Update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input I
	if err := requestutil.Decode(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := resource.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resource.singular+" updated successfully", row)
}

// Delete hard-deletes a row.
func (resource *Resource[T, I]) Delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := resource.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, resource.singular+" deleted successfully", nil)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/crud"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Handler serves the article endpoints.
type Handler struct {
	service  *Service
	resource *crud.Resource[Article, Input]
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		resource: crud.NewResource[Article, Input](service, "Article", "Articles"),
	}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/", handler.resource.ListPublic)
	router.Get("/{idOrSlug}", handler.getPublished)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	handler.resource.AdminRoutes(router)
}

/*
GET /api/articles/{idOrSlug}.

Response:
  - 200: Article (view_count already incremented)
  - 404: unknown or inactive
*/
func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	idOrSlug := requestutil.Param(request, "idOrSlug")

	article, err := handler.service.GetPublished(request.Context(), idOrSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.service.logger.Debug("article_viewed", slog.Int64("article_id", article.ID))
	respond.OK(writer, "Article retrieved successfully", article)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package visitor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/middleware"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/pkg/convert"
)

// Handler serves the visitor endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Post("/track", handler.track)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/stats", handler.stats)
}

// Middleware tracks every request it wraps without delaying it.
func (handler *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		handler.service.TrackAsync(request.Context(), middleware.RealIP(request), request.UserAgent())
		next.ServeHTTP(writer, request)
	})
}

/*
POST /api/visitors/track

Response:
  - 202: tracking was scheduled; failures are never reported
*/
func (handler *Handler) track(writer http.ResponseWriter, request *http.Request) {
	handler.service.TrackAsync(request.Context(), middleware.RealIP(request), request.UserAgent())
	respond.Accepted(writer, "Visit tracked")
}

/*
GET /api/admin/visitors/stats?days=N

N defaults to 7 and is capped at 365.
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	days := convert.ToIntD(request.URL.Query().Get("days"), constants.DefaultStatsDays)

	stats, err := handler.service.Stats(request.Context(), days)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Visitor statistics retrieved successfully", stats)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/beacon/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings PostgreSQL.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings Redis. Nil when Redis is not configured.
	CheckCache func(ctx context.Context) error

	// Now defaults to time.Now.
	Now func() time.Time
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

/*
GET /api/health

Response:
  - 200: {status: "OK", timestamp}
*/
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": handler.dependencies.Now().UTC().Format(time.RFC3339Nano),
	})
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

/*
GET /api/ready

Response:
  - 200: every dependency answered
  - 503: at least one check failed
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	isSystemReady := true

	check := func(name string, probe func(ctx context.Context) error) {
		if probe == nil {
			return
		}

		result := checkResult{Name: name, IsOK: true}
		if err := probe(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	check("postgres", handler.dependencies.CheckDatabase)
	check("redis", handler.dependencies.CheckCache)

	status, httpStatus := "ready", http.StatusOK
	if !isSystemReady {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		"status":    status,
		"checks":    results,
		"timestamp": handler.dependencies.Now().UTC().Format(time.RFC3339Nano),
	})
}

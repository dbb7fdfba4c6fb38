// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

Routes:

  - /api/...        public reads, contact form, visit tracking
  - /api/admin/...  bearer-authenticated management surface
  - /uploads/...    files written by the disk storage backend
  - /metrics        Prometheus scrape endpoint
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/beacon/internal/core/contact"
	"github.com/taibuivan/beacon/internal/core/dashboard"
	"github.com/taibuivan/beacon/internal/core/home"
	"github.com/taibuivan/beacon/internal/core/setting"
	"github.com/taibuivan/beacon/internal/core/upload"
	"github.com/taibuivan/beacon/internal/core/visitor"
	"github.com/taibuivan/beacon/internal/platform/config"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/metrics"
	"github.com/taibuivan/beacon/internal/platform/middleware"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Resource is a domain handler served under the same segment publicly and
// in the admin area.
type Resource interface {
	PublicRoutes(router chi.Router)
	AdminRoutes(router chi.Router)
}

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// A new content entity only needs an entry in Resources.
type Handlers struct {
	// Liveness is the /health handler, 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Resources are keyed by URL segment (articles, program-categories, sections...).
	Resources map[string]Resource

	Home      *home.Handler
	Visitors  *visitor.Handler
	Contacts  *contact.Handler
	Settings  *setting.Handler
	Dashboard *dashboard.Handler
	Upload    *upload.Handler
	Auth      *auth.Handler

	// Uploads serves the disk backend's files. Nil when objects live in S3.
	Uploads http.Handler
}

// Guard holds what the admin authentication middleware needs.
type Guard struct {
	Verifier middleware.TokenVerifier
	Accounts middleware.AccountChecker
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, guard Guard, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.NewRateLimiter(context, cfg.RateLimitRPS, cfg.RateLimitBurst).Handler)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Handle("/metrics", metrics.Handler())

	if h.Uploads != nil {
		r.Handle(constants.UploadRoutePrefix+"/*", h.Uploads)
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", h.Liveness)
		api.Get("/ready", h.Readiness)

		api.With(h.Visitors.Middleware).Get("/home", h.Home.Get)
		api.Route("/visitors", h.Visitors.PublicRoutes)
		api.Route("/contact", h.Contacts.PublicRoutes)
		api.Route("/settings", h.Settings.PublicRoutes)

		for segment, resource := range h.Resources {
			api.Route("/"+segment, resource.PublicRoutes)
		}

		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/auth", func(authRouter chi.Router) {
				h.Auth.PublicRoutes(authRouter)
				authRouter.Group(func(session chi.Router) {
					session.Use(middleware.RequireAdmin(guard.Verifier, guard.Accounts))
					h.Auth.SessionRoutes(session)
				})
			})

			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAdmin(guard.Verifier, guard.Accounts))

				for segment, resource := range h.Resources {
					protected.Route("/"+segment, resource.AdminRoutes)
				}

				protected.Route("/contacts", h.Contacts.AdminRoutes)
				protected.Route("/visitors", h.Visitors.AdminRoutes)
				protected.Route("/dashboard", h.Dashboard.AdminRoutes)
				protected.Route("/upload", h.Upload.AdminRoutes)

				// Editors manage content only
				protected.Group(func(admins chi.Router) {
					admins.Use(middleware.RequireRole(sec.RoleAdmin))
					admins.Route("/settings", h.Settings.AdminRoutes)
				})

				protected.Group(func(owners chi.Router) {
					owners.Use(middleware.RequireRole(sec.RoleSuperAdmin))
					owners.Route("/users", h.Auth.UserRoutes)
				})
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}

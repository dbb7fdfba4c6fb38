// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/core/article"
	"github.com/taibuivan/beacon/internal/core/category"
	"github.com/taibuivan/beacon/internal/core/collection"
	"github.com/taibuivan/beacon/internal/core/contact"
	"github.com/taibuivan/beacon/internal/core/dashboard"
	"github.com/taibuivan/beacon/internal/core/gallery"
	"github.com/taibuivan/beacon/internal/core/home"
	"github.com/taibuivan/beacon/internal/core/leadership"
	"github.com/taibuivan/beacon/internal/core/program"
	"github.com/taibuivan/beacon/internal/core/section"
	"github.com/taibuivan/beacon/internal/core/setting"
	"github.com/taibuivan/beacon/internal/core/upload"
	"github.com/taibuivan/beacon/internal/core/visitor"
	"github.com/taibuivan/beacon/internal/platform/storage"
	"github.com/taibuivan/beacon/internal/users/auth"
)

// Dependencies are the infrastructure pieces the domain handlers are built on.
type Dependencies struct {
	DB      *sqlx.DB
	Storage storage.Backend
	Auth    *auth.Service
	Logger  *slog.Logger
	Health  HealthDependencies

	// Uploads serves files of the disk backend; nil otherwise.
	Uploads http.Handler
}

// NewHandlers builds every domain service and its HTTP handler.
func NewHandlers(deps Dependencies) Handlers {
	db, logger := deps.DB, deps.Logger

	articles := article.NewService(db, logger)
	programs := program.NewService(db)
	galleryItems := gallery.NewService(db)
	leaders := leadership.NewService(db)
	collections := collection.NewServices(db)
	sections := section.NewService(db)
	contacts := contact.NewService(db, logger)
	settings := setting.NewService(setting.NewPostgresStore(db), logger)
	visitors := visitor.NewService(visitor.NewPostgresStore(db), logger, time.Now)

	resources := map[string]Resource{
		"articles":           article.NewHandler(articles),
		"article-categories": category.NewHandler(category.NewService(db, category.Article, logger)),
		"programs":           program.NewHandler(programs),
		"program-categories": category.NewHandler(category.NewService(db, category.Program, logger)),
		"gallery":            gallery.NewHandler(galleryItems),
		"gallery-categories": category.NewHandler(category.NewService(db, category.Gallery, logger)),
		"leadership":         leadership.NewHandler(leaders),
		"sections":           section.NewHandler(sections),
	}
	for segment, handler := range collections.Handlers() {
		resources[segment] = handler
	}

	counters := map[string]dashboard.Counter{
		"articles":    articles.Table(),
		"programs":    programs.Table(),
		"gallery":     galleryItems.Table(),
		"leadership":  leaders.Table(),
		"awards":      collections.Awards.Table(),
		"merchandise": collections.Merchandise.Table(),
		"partners":    collections.Partners.Table(),
		"faqs":        collections.FAQs.Table(),
		"contacts":    contacts.Table(),
	}

	liveness, readiness := NewHealthHandlers(deps.Health, logger)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Resources: resources,
		Home:      home.NewHandler(home.NewService(sections, programs, collections)),
		Visitors:  visitor.NewHandler(visitors),
		Contacts:  contact.NewHandler(contacts),
		Settings:  setting.NewHandler(settings),
		Dashboard: dashboard.NewHandler(dashboard.NewService(counters, contacts, visitors)),
		Upload:    upload.NewHandler(upload.NewService(deps.Storage, logger)),
		Auth:      auth.NewHandler(deps.Auth),
		Uploads:   deps.Uploads,
	}
}

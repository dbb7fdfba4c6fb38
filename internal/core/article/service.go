// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	"github.com/taibuivan/beacon/internal/platform/dberr"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/convert"
	"github.com/taibuivan/beacon/pkg/slug"
)

const resourceName = "Article"

// Service holds the article business rules.
type Service struct {
	*crud.Service[Article, Input]
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	table := crud.NewTable[Article](db, crud.Spec{
		Table:         schema.Articles,
		Resource:      resourceName,
		CategoryTable: schema.ArticleCategories,
		SearchColumns: []string{"title", "excerpt", "content", "c.name"},
		OrderBy:       "t.published_at DESC, t.created_at DESC",
	})

	return &Service{
		Service: crud.NewService[Article, Input](table),
		logger:  logger,
		now:     time.Now,
	}
}

// Create assigns a unique slug and defaults published_at to now.
func (service *Service) Create(context context.Context, input Input) (*Article, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}

	changes := input.Changes()

	title, _ := input.Title.Get()
	requested, _ := input.Slug.Get()
	articleSlug, err := service.uniqueSlug(context, baseSlug(requested, title), 0)
	if err != nil {
		return nil, err
	}
	changes.Set(FieldSlug, articleSlug)

	if !changes.Has(FieldPublishedAt) || input.PublishedAt.IsNull() {
		changes.Set(FieldPublishedAt, service.now())
	}

	article, err := service.Table().Create(context, changes)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int64("article_id", article.ID),
		slog.String("slug", article.Slug),
	)
	return article, nil
}

// Update re-derives the slug only when the title or slug is being changed.
func (service *Service) Update(context context.Context, id int64, input Input) (*Article, error) {
	if input.Title.IsSet() {
		validator := &validate.Validator{}
		if err := validator.RequiredText(FieldTitle, input.Title).Err(); err != nil {
			return nil, err
		}
	}

	changes := input.Changes()

	requested, slugGiven := input.Slug.Get()
	title, titleGiven := input.Title.Get()

	if slugGiven || titleGiven {
		articleSlug, err := service.uniqueSlug(context, baseSlug(requested, title), id)
		if err != nil {
			return nil, err
		}
		changes.Set(FieldSlug, articleSlug)
	}

	// published_at is NOT NULL; an explicit null means "leave as is"
	if input.PublishedAt.IsNull() {
		changes.Remove(FieldPublishedAt)
	}

	return service.Table().Update(context, id, changes)
}

// GetPublished resolves an id or slug to an active article and counts the view.
func (service *Service) GetPublished(context context.Context, idOrSlug string) (*Article, error) {
	lookup := crud.Eq("t.slug", idOrSlug)
	if id, ok := convert.ToInt64(idOrSlug); ok && id > 0 {
		lookup = crud.Eq("t.id", id)
	}

	article, err := service.Table().FindOne(context, "", lookup, crud.Eq("t.is_active", true))
	if err != nil {
		return nil, err
	}

	query := "UPDATE " + schema.Articles + " SET view_count = view_count + 1 WHERE id = $1"
	if _, err := service.Table().Querier().ExecContext(context, query, article.ID); err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	article.ViewCount++

	return article, nil
}

// uniqueSlug returns base or the first free base-N, ignoring excludeID's own slug.
func (service *Service) uniqueSlug(context context.Context, base string, excludeID int64) (string, error) {
	if base == "" {
		return "", validate.RequiredError(FieldSlug, "Slug cannot be derived from the title")
	}

	query := "SELECT slug FROM " + schema.Articles + " WHERE (slug = $1 OR slug LIKE $2) AND id <> $3"

	var existing []string
	if err := sqlx.SelectContext(context, service.Table().Querier(), &existing, query, base, base+"-%", excludeID); err != nil {
		return "", dberr.Wrap(err, resourceName)
	}

	taken := make(map[string]struct{}, len(existing))
	for _, value := range existing {
		taken[value] = struct{}{}
	}

	return slug.Unique(base, taken), nil
}

// baseSlug prefers an explicit slug over the title.
func baseSlug(requested, title string) string {
	if strings.TrimSpace(requested) != "" {
		return slug.From(requested)
	}
	return slug.From(title)
}

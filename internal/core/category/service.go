// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/dberr"
	"github.com/taibuivan/beacon/internal/platform/validate"
	"github.com/taibuivan/beacon/pkg/slug"
)

const resourceName = "Category"

// Service adds slug derivation and the delete guard to the generic operations.
type Service struct {
	*crud.Service[Category, Input]
	kind   Kind
	logger *slog.Logger
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB, kind Kind, logger *slog.Logger) *Service {
	table := crud.NewTable[Category](db, crud.Spec{
		Table:         kind.Table,
		Resource:      resourceName,
		SearchColumns: []string{"name", "slug", "description"},
	})

	return &Service{
		Service: crud.NewService[Category, Input](table),
		kind:    kind,
		logger:  logger,
	}
}

// Create derives the slug from the name when none is given.
func (service *Service) Create(context context.Context, input Input) (*Category, error) {
	if err := input.ValidateCreate(); err != nil {
		return nil, err
	}

	changes := input.Changes()
	if !changes.Has(FieldSlug) {
		name, _ := input.Name.Get()
		changes.Set(FieldSlug, slug.From(name))
	}

	if value, _ := changes.Get(FieldSlug); value == "" {
		return nil, validate.RequiredError(FieldSlug, "Slug cannot be derived from the name")
	}

	category, err := service.Table().Create(context, changes)
	if err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("table", service.kind.Table),
		slog.Int64("category_id", category.ID),
	)
	return category, nil
}

// Delete refuses to remove a category that items still reference.
//
// The category row is locked first so no item can start referencing it
// between the check and the delete.
func (service *Service) Delete(context context.Context, id int64) error {
	err := service.Table().InTx(context, func(tx *crud.Table[Category]) error {
		var locked int64
		lockQuery := "SELECT id FROM " + service.kind.Table + " WHERE id = $1 FOR UPDATE"
		if err := sqlx.GetContext(context, tx.Querier(), &locked, lockQuery, id); err != nil {
			return dberr.Wrap(err, resourceName)
		}

		var inUse bool
		usageQuery := "SELECT EXISTS (SELECT 1 FROM " + service.kind.Items + " WHERE category_id = $1)"
		if err := sqlx.GetContext(context, tx.Querier(), &inUse, usageQuery, id); err != nil {
			return dberr.Wrap(err, resourceName)
		}

		if inUse {
			return apperr.BadRequest(fmt.Sprintf(
				"Cannot delete category with related %[1]s. Please reassign or delete the %[1]s first.",
				service.kind.ItemsNoun,
			))
		}

		deleted, err := tx.Delete(context, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperr.NotFound(resourceName)
		}
		return nil
	})
	if err != nil {
		return err
	}

	service.logger.Warn("category_deleted",
		slog.String("table", service.kind.Table),
		slog.Int64("category_id", id),
	)
	return nil
}

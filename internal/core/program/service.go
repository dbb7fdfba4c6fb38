// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
)

// Service holds the program business rules.
type Service struct {
	*crud.Service[Program, Input]
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB) *Service {
	table := crud.NewTable[Program](db, crud.Spec{
		Table:         schema.Programs,
		Resource:      "Program",
		CategoryTable: schema.ProgramCategories,
		SearchColumns: []string{"title", "description", "c.name"},
		Highlight:     true,
	})
	return &Service{Service: crud.NewService[Program, Input](table)}
}

// Highlighted returns the active highlighted program.
func (service *Service) Highlighted(context context.Context) (*Program, error) {
	return service.Table().FindOne(context, "",
		crud.Eq("t.is_highlighted", true),
		crud.Eq("t.is_active", true),
	)
}

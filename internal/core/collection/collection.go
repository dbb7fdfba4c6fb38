// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package collection serves the plain list entities of the site: awards,
// merchandise, partners and FAQs. They have no behaviour beyond the
// standard CRUD surface.
package collection

import (
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
)

// Handler mounts one entity's routes.
type Handler interface {
	PublicRoutes(router chi.Router)
	AdminRoutes(router chi.Router)
}

// Services groups the entity services, exposed for the home and dashboard
// aggregates.
type Services struct {
	Awards      *crud.Service[Award, AwardInput]
	Merchandise *crud.Service[Merchandise, MerchandiseInput]
	Partners    *crud.Service[Partner, PartnerInput]
	FAQs        *crud.Service[FAQ, FAQInput]
}

// NewServices creates one service per collection table.
func NewServices(db *sqlx.DB) *Services {
	return &Services{
		Awards: crud.NewService[Award, AwardInput](crud.NewTable[Award](db, crud.Spec{
			Table:         schema.Awards,
			Resource:      "Award",
			SearchColumns: []string{"title", "issuer"},
			OrderBy:       "t.order_position ASC, t.year DESC NULLS LAST, t.created_at DESC",
		})),
		Merchandise: crud.NewService[Merchandise, MerchandiseInput](crud.NewTable[Merchandise](db, crud.Spec{
			Table:         schema.Merchandise,
			Resource:      "Merchandise",
			SearchColumns: []string{"name", "description"},
		})),
		Partners: crud.NewService[Partner, PartnerInput](crud.NewTable[Partner](db, crud.Spec{
			Table:         schema.Partners,
			Resource:      "Partner",
			SearchColumns: []string{"name"},
		})),
		FAQs: crud.NewService[FAQ, FAQInput](crud.NewTable[FAQ](db, crud.Spec{
			Table:         schema.FAQs,
			Resource:      "FAQ",
			SearchColumns: []string{"question", "answer"},
		})),
	}
}

// Handlers returns the route handlers keyed by URL segment.
func (services *Services) Handlers() map[string]Handler {
	return map[string]Handler{
		"awards":      crud.NewResource[Award, AwardInput](services.Awards, "Award", "Awards"),
		"merchandise": crud.NewResource[Merchandise, MerchandiseInput](services.Merchandise, "Merchandise", "Merchandise"),
		"partners":    crud.NewResource[Partner, PartnerInput](services.Partners, "Partner", "Partners"),
		"faqs":        crud.NewResource[FAQ, FAQInput](services.FAQs, "FAQ", "FAQs"),
	}
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package home assembles the public homepage in one response.
package home

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/beacon/internal/core/collection"
	"github.com/taibuivan/beacon/internal/core/program"
	"github.com/taibuivan/beacon/internal/core/section"
	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Page is the homepage payload. Missing sections are null.
type Page struct {
	Hero               *section.Hero        `json:"hero"`
	Vision             *section.Vision      `json:"vision"`
	Statistics         *section.Statistics  `json:"statistics"`
	Impact             *section.Impact      `json:"impact"`
	HighlightedProgram *program.Program     `json:"highlighted_program"`
	ProgramsSection    *section.Heading     `json:"programs_section"`
	PartnersSection    *section.Heading     `json:"partners_section"`
	Partners           []collection.Partner `json:"partners"`
	FAQSection         *section.Heading     `json:"faq_section"`
	FAQs               []collection.FAQ     `json:"faqs"`
	DonationCTA        *section.CTA         `json:"donation_cta"`
	ClosingCTA         *section.CTA         `json:"closing_cta"`
	ContactSection     *section.Heading     `json:"contact_section"`
}

// Service assembles the homepage from the section, program and collection services.
type Service struct {
	sections    *section.Service
	programs    *program.Service
	collections *collection.Services
}

// NewService creates a Service over the content services.
func NewService(sections *section.Service, programs *program.Service, collections *collection.Services) *Service {
	return &Service{sections: sections, programs: programs, collections: collections}
}

// Page loads every block concurrently.
func (service *Service) Page(ctx context.Context) (*Page, error) {
	var page Page
	group, groupCtx := errgroup.WithContext(ctx)
	sections := service.sections

	load(group, &page.Hero, func() (*section.Hero, error) { return sections.Hero.First(groupCtx) })
	load(group, &page.Vision, func() (*section.Vision, error) { return sections.Vision.First(groupCtx) })
	load(group, &page.Statistics, func() (*section.Statistics, error) { return sections.Statistics.First(groupCtx) })
	load(group, &page.Impact, func() (*section.Impact, error) { return sections.Impact.First(groupCtx) })
	load(group, &page.ProgramsSection, func() (*section.Heading, error) { return sections.ProgramsHeading.First(groupCtx) })
	load(group, &page.PartnersSection, func() (*section.Heading, error) { return sections.PartnersHeading.First(groupCtx) })
	load(group, &page.FAQSection, func() (*section.Heading, error) { return sections.FAQHeading.First(groupCtx) })
	load(group, &page.DonationCTA, func() (*section.CTA, error) { return sections.DonationCTA.First(groupCtx) })
	load(group, &page.ClosingCTA, func() (*section.CTA, error) { return sections.ClosingCTA.First(groupCtx) })
	load(group, &page.ContactSection, func() (*section.Heading, error) { return sections.ContactHeading.First(groupCtx) })

	load(group, &page.HighlightedProgram, func() (*program.Program, error) {
		highlighted, err := service.programs.Highlighted(groupCtx)
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return highlighted, err
	})
	load(group, &page.Partners, func() ([]collection.Partner, error) {
		return service.collections.Partners.All(groupCtx, crud.ActiveOnly)
	})
	load(group, &page.FAQs, func() ([]collection.FAQ, error) {
		return service.collections.FAQs.All(groupCtx, crud.ActiveOnly)
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &page, nil
}

// load runs fetch in the group and stores its result in target.
func load[T any](group *errgroup.Group, target *T, fetch func() (T, error)) {
	group.Go(func() error {
		value, err := fetch()
		if err != nil {
			return err
		}
		*target = value
		return nil
	})
}

// # HTTP

// Handler serves the home endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
GET /api/home

Response:
  - 200: [Page]
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Page(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Home page retrieved successfully", page)
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/database/schema"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Service holds every singleton section.
type Service struct {
	Hero             *Singleton[Hero, HeroInput]
	Vision           *Singleton[Vision, VisionInput]
	Statistics       *Singleton[Statistics, StatisticsInput]
	DonationCTA      *Singleton[CTA, CTAInput]
	ClosingCTA       *Singleton[CTA, CTAInput]
	Impact           *Singleton[Impact, ImpactInput]
	ProgramsHeading  *Singleton[Heading, HeadingInput]
	PartnersHeading  *Singleton[Heading, HeadingInput]
	FAQHeading       *Singleton[Heading, HeadingInput]
	ContactHeading   *Singleton[Heading, HeadingInput]
	LeadershipHeader *Singleton[Heading, HeadingInput]
	History          *Singleton[History, HistoryInput]

	slots map[string]slot
}

// NewService wires the service to its tables.
func NewService(db *sqlx.DB) *Service {
	service := &Service{
		Hero:             newSingleton[Hero, HeroInput](db, schema.HeroSection),
		Vision:           newSingleton[Vision, VisionInput](db, schema.VisionSection),
		Statistics:       newSingleton[Statistics, StatisticsInput](db, schema.HomeStatistics),
		DonationCTA:      newSingleton[CTA, CTAInput](db, schema.DonationCTA),
		ClosingCTA:       newSingleton[CTA, CTAInput](db, schema.ClosingCTA),
		Impact:           newSingleton[Impact, ImpactInput](db, schema.HomeImpactSection),
		ProgramsHeading:  newSingleton[Heading, HeadingInput](db, schema.HomeProgramsSection),
		PartnersHeading:  newSingleton[Heading, HeadingInput](db, schema.HomePartnersSection),
		FAQHeading:       newSingleton[Heading, HeadingInput](db, schema.HomeFAQSection),
		ContactHeading:   newSingleton[Heading, HeadingInput](db, schema.HomeContactSection),
		LeadershipHeader: newSingleton[Heading, HeadingInput](db, schema.LeadershipSection),
		History:          newSingleton[History, HistoryInput](db, schema.HistorySection),
	}

	service.slots = map[string]slot{
		"hero":         service.Hero,
		"vision":       service.Vision,
		"statistics":   service.Statistics,
		"donation-cta": service.DonationCTA,
		"closing-cta":  service.ClosingCTA,
		"impact":       service.Impact,
		"programs":     service.ProgramsHeading,
		"partners":     service.PartnersHeading,
		"faq":          service.FAQHeading,
		"contact":      service.ContactHeading,
		"leadership":   service.LeadershipHeader,
		"history":      service.History,
	}

	return service
}

func (service *Service) lookup(request *http.Request) (slot, error) {
	slot, ok := service.slots[requestutil.Param(request, "section")]
	if !ok {
		return nil, apperr.NotFound(resourceName)
	}
	return slot, nil
}

// # HTTP

// Handler serves the section endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes mounts the public endpoints.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Get("/{section}", handler.getPublic)
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/{section}", handler.getAdmin)
	router.Put("/{section}", handler.update)
	router.Post("/{section}", handler.create)
}

/*
GET /api/sections/{section}

Response:
  - 200: the active section row
  - 404: unknown section or no active row
*/
func (handler *Handler) getPublic(writer http.ResponseWriter, request *http.Request) {
	slot, err := handler.service.lookup(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := slot.public(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Section retrieved successfully", row)
}

// getAdmin returns the row regardless of is_active; data is null when empty.
func (handler *Handler) getAdmin(writer http.ResponseWriter, request *http.Request) {
	slot, err := handler.service.lookup(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := slot.current(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Section retrieved successfully", row)
}

/*
PUT /api/admin/sections/{section}

Response:
  - 200: the updated row, or null data when the section was never created
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	slot, err := handler.service.lookup(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := slot.save(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Section updated successfully", row)
}

/*
POST /api/admin/sections/{section}

Response:
  - 201: the created row
  - 409: the section already has a row
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	slot, err := handler.service.lookup(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	row, err := slot.create(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Section created successfully", row)
}

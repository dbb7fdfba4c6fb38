// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard gathers the admin overview counters.
package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/beacon/internal/core/visitor"
	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Counter counts the rows of one table.
type Counter interface {
	Count(context context.Context, visibility crud.Visibility) (int, error)
}

// UnreadCounter reports the number of unread contact messages.
type UnreadCounter interface {
	CountUnread(context context.Context) (int, error)
}

// VisitorTotals reports visit counts for the dashboard.
type VisitorTotals interface {
	Totals(context context.Context) (visitor.Totals, error)
}

// Overview is the dashboard payload.
type Overview struct {
	Counts         map[string]int `json:"counts"`
	UnreadContacts int            `json:"unread_contacts"`
	Visitors       visitor.Totals `json:"visitors"`
}

// Service holds the dashboard business rules.
type Service struct {
	counters map[string]Counter
	contacts UnreadCounter
	visitors VisitorTotals
}

// NewService takes the tables to count, keyed by the name shown to admins.
func NewService(counters map[string]Counter, contacts UnreadCounter, visitors VisitorTotals) *Service {
	return &Service{counters: counters, contacts: contacts, visitors: visitors}
}

// Overview runs every count concurrently and fails on the first error.
func (service *Service) Overview(ctx context.Context) (*Overview, error) {
	overview := &Overview{Counts: make(map[string]int, len(service.counters))}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)

	for name, counter := range service.counters {
		group.Go(func() error {
			total, err := counter.Count(groupCtx, crud.AnyState)
			if err != nil {
				return err
			}
			mu.Lock()
			overview.Counts[name] = total
			mu.Unlock()
			return nil
		})
	}

	group.Go(func() (err error) {
		overview.UnreadContacts, err = service.contacts.CountUnread(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		overview.Visitors, err = service.visitors.Totals(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

// # HTTP

// Handler serves the dashboard endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes mounts the admin endpoints.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/", handler.overview)
}

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	overview, err := handler.service.Overview(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Dashboard retrieved successfully", overview)
}

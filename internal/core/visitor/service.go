// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package visitor

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/metrics"
)

// Service holds the visitor business rules.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds the service. now defaults to time.Now.
func NewService(store Store, logger *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, logger: logger, now: now}
}

// today is the current UTC calendar day at midnight.
func (service *Service) today() time.Time {
	now := service.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// # Tracking

// Track records a visit for ip. Bots are skipped silently.
func (service *Service) Track(context context.Context, ip, userAgent string) error {
	if ip == "" {
		return nil
	}

	if IsBot(userAgent) {
		metrics.VisitsTracked.WithLabelValues("bot").Inc()
		return nil
	}

	if err := service.store.Upsert(context, ip, userAgent, service.today()); err != nil {
		metrics.VisitsTracked.WithLabelValues("failed").Inc()
		return err
	}

	metrics.VisitsTracked.WithLabelValues("tracked").Inc()
	return nil
}

// TrackAsync tracks in the background. The visit outlives the request
// context but is bounded by [constants.TrackingTimeout].
func (service *Service) TrackAsync(ctx context.Context, ip, userAgent string) {
	detached := context.WithoutCancel(ctx)

	go func() {
		trackCtx, cancel := context.WithTimeout(detached, constants.TrackingTimeout)
		defer cancel()

		if err := service.Track(trackCtx, ip, userAgent); err != nil {
			service.logger.Warn("visit_tracking_failed",
				slog.String("ip", ip),
				slog.Any("error", err),
			)
		}
	}()
}

// # Statistics

// ClampDays bounds a requested chart window.
func ClampDays(days int) int {
	switch {
	case days < 1:
		return constants.DefaultStatsDays
	case days > constants.MaxStatsDays:
		return constants.MaxStatsDays
	default:
		return days
	}
}

// ByDay returns one entry per day for the trailing window, today included,
// with zero for days without visits.
func (service *Service) ByDay(context context.Context, days int) ([]DayCount, error) {
	days = ClampDays(days)
	from := service.today().AddDate(0, 0, -(days - 1))

	counts, err := service.store.CountByDay(context, from)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int, len(counts))
	for _, count := range counts {
		byDate[count.Date] = count.Count
	}

	filled := make([]DayCount, 0, days)
	for offset := 0; offset < days; offset++ {
		date := from.AddDate(0, 0, offset).Format(DateLayout)
		filled = append(filled, DayCount{Date: date, Count: byDate[date]})
	}
	return filled, nil
}

// Totals counts distinct visitors for today, this week (from Monday),
// this month and all time.
func (service *Service) Totals(context context.Context) (Totals, error) {
	today := service.today()
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	return service.store.Totals(context, today, weekStart, monthStart)
}

// Devices buckets the window's visitor rows by device class.
func (service *Service) Devices(context context.Context, days int) (map[string]int, error) {
	from := service.today().AddDate(0, 0, -(ClampDays(days) - 1))

	agents, err := service.store.AgentsSince(context, from)
	if err != nil {
		return nil, err
	}

	devices := make(map[string]int)
	for _, agent := range agents {
		devices[DeviceClass(agent.UserAgent)] += agent.Count
	}
	return devices, nil
}

// Stats assembles the full report concurrently.
func (service *Service) Stats(ctx context.Context, days int) (*Stats, error) {
	var stats Stats
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		stats.Days, err = service.ByDay(groupCtx, days)
		return err
	})
	group.Go(func() (err error) {
		stats.Totals, err = service.Totals(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.Devices, err = service.Devices(groupCtx, days)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

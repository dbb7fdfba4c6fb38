// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package visitor counts site visits per IP and day and rolls them up for the
admin dashboard.

# Tracking

A visit upserts the (ip, day) row: the first visit inserts visit_count = 1,
later visits on the same day increment it. Tracking is best-effort. The
HTTP middleware runs it detached from the request and only logs failures.

# Statistics

Daily figures count distinct IPs, not visit_count. Days without visits are
filled with zero by the service, not by the query.
*/
package visitor

import (
	"context"
	"time"

	"github.com/avct/uasurfer"
)

// DateLayout is how days are rendered in statistics.
const DateLayout = "2006-01-02"

// DayCount is the number of distinct visitors on one day.
type DayCount struct {
	Date  string `db:"date"  json:"date"`
	Count int    `db:"count" json:"count"`
}

// Totals are distinct visitor counts over fixed windows.
type Totals struct {
	Today   int `db:"today"    json:"today"`
	Week    int `db:"week"     json:"this_week"`
	Month   int `db:"month"    json:"this_month"`
	AllTime int `db:"all_time" json:"all_time"`
}

// AgentCount is the number of visitor rows per raw user agent.
type AgentCount struct {
	UserAgent string `db:"user_agent"`
	Count     int    `db:"count"`
}

// Stats is the admin visitor report.
type Stats struct {
	Days    []DayCount     `json:"days"`
	Totals  Totals         `json:"totals"`
	Devices map[string]int `json:"devices"`
}

// Store persists visits.
type Store interface {
	Upsert(context context.Context, ip, userAgent string, day time.Time) error
	CountByDay(context context.Context, from time.Time) ([]DayCount, error)
	Totals(context context.Context, today, weekStart, monthStart time.Time) (Totals, error)
	AgentsSince(context context.Context, from time.Time) ([]AgentCount, error)
}

// # User Agents

// IsBot reports whether the user agent belongs to a crawler.
func IsBot(userAgent string) bool {
	return uasurfer.Parse(userAgent).IsBot()
}

// DeviceClass buckets a user agent for the device breakdown.
func DeviceClass(userAgent string) string {
	switch uasurfer.Parse(userAgent).DeviceType {
	case uasurfer.DeviceComputer:
		return "desktop"
	case uasurfer.DevicePhone:
		return "phone"
	case uasurfer.DeviceTablet:
		return "tablet"
	case uasurfer.DeviceTV:
		return "tv"
	case uasurfer.DeviceConsole:
		return "console"
	case uasurfer.DeviceWearable:
		return "wearable"
	default:
		return "unknown"
	}
}

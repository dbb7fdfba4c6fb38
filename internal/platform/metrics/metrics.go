// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics holds the Prometheus instruments used across Beacon.
// All collectors are registered with the global registry, so mounting
// [Handler] is enough to expose them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "beacon_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})

	VisitsTracked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_visits_tracked_total",
			Help: "Visitor tracking outcomes (recorded, bot, failed).",
		}, []string{"result"})

	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_login_attempts_total",
			Help: "Admin login outcomes (success, failure, throttled).",
		}, []string{"result"})

	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beacon_uploads_total",
			Help: "Stored images by entity folder.",
		}, []string{"entity"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		VisitsTracked,
		LoginAttempts,
		UploadsTotal,
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer, login throttling window.
  - Uploads: size cap and accepted image types.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "beacon-api"
	AppVersion = "1.0.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads of up to MaxUploadSize must fit in it.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 5 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 15 * time.Second

	// StartupTimeout bounds database and cache connectivity checks at boot.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "beacon-api"

	// MaxLoginAttempts is the number of failed logins tolerated per window.
	MaxLoginAttempts = 5

	// LoginAttemptWindow is the sliding window for failed login counting.
	LoginAttemptWindow = 15 * time.Minute

	// MinPasswordLength applies to admin accounts.
	MinPasswordLength = 8
)

// # Visitor Tracking

const (
	// TrackingTimeout bounds the detached visit upsert.
	TrackingTimeout = 5 * time.Second

	// DefaultStatsDays is the window of the visitor chart when none is requested.
	DefaultStatsDays = 7

	// MaxStatsDays caps the visitor chart window.
	MaxStatsDays = 365
)

// # Uploads

const (
	// MaxUploadSize is the largest accepted image in bytes (5 MB).
	MaxUploadSize = 5 << 20

	// UploadFormField is the multipart field carrying the file.
	UploadFormField = "image"

	// UploadRoutePrefix is where the disk backend is served from.
	UploadRoutePrefix = "/uploads"
)

// AllowedImageTypes maps accepted MIME types to the extension written to storage.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixLoginAttempts = "auth:login_attempts:"
)

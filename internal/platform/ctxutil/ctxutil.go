// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ctxutil carries request-scoped values through [context.Context].

Three values travel with every API request: the correlation id, the request
logger and, behind the admin guard, the token claims. A [Trace] created by
the access logger lets the guard report the signed-in admin back outward,
since inner middleware cannot change the outer context.
*/
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/beacon/internal/platform/ctxkey"
	"github.com/taibuivan/beacon/internal/platform/sec"
)

// # Correlation

// WithRequestID attaches the X-Request-ID value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// RequestID returns the correlation id, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Logging

// WithLogger attaches the request logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// Logger returns the request logger. Without one it falls back to the
// default logger, tagged with the request id when there is one.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if id := RequestID(ctx); id != "" {
		return slog.Default().With(slog.String("request_id", id))
	}
	return slog.Default()
}

// # Admin Identity

// Trace collects what inner handlers learn about a request.
type Trace struct {
	AdminID int64
}

type traceKey struct{}

// WithTrace attaches an empty [Trace] and returns it.
func WithTrace(ctx context.Context) (context.Context, *Trace) {
	trace := &Trace{}
	return context.WithValue(ctx, traceKey{}, trace), trace
}

// WithClaims attaches verified admin claims and records the admin on the
// request [Trace], if any.
func WithClaims(ctx context.Context, claims *sec.AuthClaims) context.Context {
	if trace, ok := ctx.Value(traceKey{}).(*Trace); ok && claims != nil {
		trace.AdminID = claims.UserID
	}
	return context.WithValue(ctx, ctxkey.KeyUser, claims)
}

// Claims returns the admin claims set by the guard.
func Claims(ctx context.Context) (*sec.AuthClaims, bool) {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	return claims, ok && claims != nil
}

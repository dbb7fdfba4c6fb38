// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/beacon/internal/platform/apperr"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/ctxutil"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the token service
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// AccountChecker confirms that the account behind a token may still act.
//
// It returns the account's current role, an Unauthorized error when the
// account no longer exists, or a Forbidden error when it is deactivated.
type AccountChecker interface {
	CheckAccount(ctx context.Context, userID int64) (sec.UserRole, error)
}

// BearerToken extracts the token from 'Authorization: Bearer <token>'.
func BearerToken(request *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(request.Header.Get(constants.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// RequireAdmin authenticates admin requests.
//
// # Flow
//  1. Read the bearer token (401 when absent).
//  2. Verify it through [TokenVerifier] and require an access token (401).
//  3. Re-check the account through [AccountChecker] (401 or 403).
//  4. Inject [*sec.AuthClaims] carrying the current role into the context.
func RequireAdmin(verifier TokenVerifier, accounts AccountChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := BearerToken(request)
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Access token is required"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token").WithCause(err))
				return
			}

			if claims.TokenType != sec.TokenTypeAccess {
				respond.Error(writer, request, apperr.Unauthorized("Invalid token type"))
				return
			}

			role, err := accounts.CheckAccount(request.Context(), claims.UserID)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			claims.Role = role

			ctx := ctxutil.WithClaims(request.Context(), claims)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests if the authenticated admin's role is below role.
//
// # Usage
//
// Must be registered in the router AFTER [RequireAdmin].
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, ok := ctxutil.Claims(request.Context())
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !claims.Role.AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

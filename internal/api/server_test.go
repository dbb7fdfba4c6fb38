// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/beacon/internal/api"
	"github.com/taibuivan/beacon/internal/platform/config"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/platform/storage"
	"github.com/taibuivan/beacon/internal/users/auth"
)

// roleAccounts resolves every user id to a fixed role.
type roleAccounts map[int64]sec.UserRole

func (accounts roleAccounts) CheckAccount(_ context.Context, userID int64) (sec.UserRole, error) {
	return accounts[userID], nil
}

type fixture struct {
	handler http.Handler
	tokens  *sec.TokenService
}

func newFixture(t *testing.T, health api.HealthDependencies) *fixture {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sqlxDB := sqlx.NewDb(db, database.DriverName)

	tokens, err := sec.NewTokenService("test-secret", constants.AuthIssuer, time.Minute, time.Hour)
	require.NoError(t, err)

	disk, err := storage.NewDisk(t.TempDir(), "", constants.UploadRoutePrefix)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := auth.NewService(auth.NewUserRepository(sqlxDB),
		auth.NewMemoryLoginThrottle(constants.MaxLoginAttempts, constants.LoginAttemptWindow), tokens, logger)

	handlers := api.NewHandlers(api.Dependencies{
		DB:      sqlxDB,
		Storage: disk,
		Auth:    authService,
		Logger:  logger,
		Health:  health,
	})

	cfg := &config.Config{ServerPort: "0", Environment: "test", RateLimitRPS: 1000, RateLimitBurst: 1000}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	accounts := roleAccounts{1: sec.RoleEditor, 2: sec.RoleAdmin, 3: sec.RoleSuperAdmin}
	server := api.NewServer(ctx, cfg, logger, api.Guard{Verifier: tokens, Accounts: accounts}, handlers)

	return &fixture{handler: server.Handler(), tokens: tokens}
}

func (fixture *fixture) token(t *testing.T, userID int64, role sec.UserRole) string {
	t.Helper()
	token, err := fixture.tokens.GenerateAccessToken(sec.Identity{UserID: userID, Email: "admin@example.org", Role: role})
	require.NoError(t, err)
	return token
}

func (fixture *fixture) do(method, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	if token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	fixture.handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHealth verifies the liveness payload.
*/
func TestHealth(t *testing.T) {
	fixture := newFixture(t, api.HealthDependencies{
		Now: func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	})

	recorder := fixture.do(http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "2026-05-01T12:00:00Z", body["timestamp"])
}

/*
TestReady reports 503 when a dependency check fails.
*/
func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		probe  func(context.Context) error
		status int
	}{
		{"healthy", func(context.Context) error { return nil }, http.StatusOK},
		{"database down", func(context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newFixture(t, api.HealthDependencies{CheckDatabase: tt.probe})
			assert.Equal(t, tt.status, fixture.do(http.MethodGet, "/api/ready", "").Code)
		})
	}
}

/*
TestAdminAccess checks authentication and role gates before any handler
touches the database.

Steps:
 1. Admin routes without a token are 401.
 2. Editors are refused settings and users (403).
 3. Admins are refused users only.
*/
func TestAdminAccess(t *testing.T) {
	fixture := newFixture(t, api.HealthDependencies{})
	editor := fixture.token(t, 1, sec.RoleEditor)
	admin := fixture.token(t, 2, sec.RoleAdmin)

	refresh, err := fixture.tokens.GenerateRefreshToken(sec.Identity{UserID: 2, Role: sec.RoleAdmin})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"no token", http.MethodGet, "/api/admin/articles", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/admin/dashboard", "not-a-token", http.StatusUnauthorized},
		{"refresh token used as access token", http.MethodGet, "/api/admin/auth/me", refresh, http.StatusUnauthorized},
		{"editor on settings", http.MethodGet, "/api/admin/settings", editor, http.StatusForbidden},
		{"editor on users", http.MethodGet, "/api/admin/users", editor, http.StatusForbidden},
		{"admin on users", http.MethodDelete, "/api/admin/users/4", admin, http.StatusForbidden},
		{"invalid id reaches handler", http.MethodGet, "/api/admin/articles/abc", editor, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, fixture.do(tt.method, tt.path, tt.token).Code)
		})
	}
}

/*
TestMetricsEndpoint verifies the Prometheus scrape endpoint is mounted.
*/
func TestMetricsEndpoint(t *testing.T) {
	fixture := newFixture(t, api.HealthDependencies{})
	fixture.do(http.MethodGet, "/api/health", "")

	recorder := fixture.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "beacon_http_requests_total")
}

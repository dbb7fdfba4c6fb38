// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Beacon HTTP API server.
//
// # Startup Sequence
//
//  1. Load configuration from the environment (and .env).
//  2. Initialize the structured logger.
//  3. Connect to PostgreSQL.
//  4. Connect to Redis when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Build the token service and the upload storage backend.
//  7. Wire HTTP handlers and bootstrap the first admin.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/beacon/internal/api"
	"github.com/taibuivan/beacon/internal/platform/config"
	"github.com/taibuivan/beacon/internal/platform/constants"
	"github.com/taibuivan/beacon/internal/platform/database"
	"github.com/taibuivan/beacon/internal/platform/logger"
	"github.com/taibuivan/beacon/internal/platform/migration"
	redisstore "github.com/taibuivan/beacon/internal/platform/redis"
	"github.com/taibuivan/beacon/internal/platform/respond"
	"github.com/taibuivan/beacon/internal/platform/sec"
	"github.com/taibuivan/beacon/internal/platform/storage"
	"github.com/taibuivan/beacon/internal/users/auth"
)

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ── 2. Logger ──────────────────────────────────────────────────────────
	log, logCloser, err := logger.New(logger.Options{
		Debug:      cfg.Debug,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	slog.SetDefault(log)

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
	)

	// Stack traces and causes stay out of production responses
	respond.ExposeCauses(!cfg.IsProduction())

	// Root context, cancelled on SIGINT/SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	db, err := database.Open(startupCtx, cfg.DatabaseURL, cfg.DBMaxConns, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		_ = db.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.Connect(startupCtx, redisstore.Options{URL: cfg.RedisURL, PoolSize: cfg.RedisPoolSize}, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.AutoMigrate {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationDir, log), "run migrations")
	}

	// ── 6. Tokens & Storage ───────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTExpiresIn, cfg.JWTRefreshExpireIn)
	must(log, err, "initialize jwt service")

	backend, uploads, err := newStorage(startupCtx, cfg)
	must(log, err, "initialize upload storage")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	var throttle auth.LoginThrottle = auth.NewMemoryLoginThrottle(constants.MaxLoginAttempts, constants.LoginAttemptWindow)
	if rdb != nil {
		throttle = auth.NewRedisLoginThrottle(rdb, constants.MaxLoginAttempts, constants.LoginAttemptWindow)
	}
	authService := auth.NewService(auth.NewUserRepository(db), throttle, tokens, log)

	_, err = authService.Bootstrap(startupCtx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	must(log, err, "bootstrap admin account")

	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return database.Ping(ctx, db) },
	}
	if rdb != nil {
		health.CheckCache = redisstore.Checker(rdb)
	}

	handlers := api.NewHandlers(api.Dependencies{
		DB:      db,
		Storage: backend,
		Auth:    authService,
		Logger:  log,
		Health:  health,
		Uploads: uploads,
	})

	// ── 8. HTTP Server & Graceful Shutdown ────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, api.Guard{Verifier: tokens, Accounts: authService}, handlers)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newStorage picks the upload backend. The disk backend also returns the
// handler that serves its files.
func newStorage(ctx context.Context, cfg *config.Config) (storage.Backend, http.Handler, error) {
	if cfg.StorageDriver == config.StorageS3 {
		bucket, err := storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		return bucket, nil, err
	}

	disk, err := storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL, constants.UploadRoutePrefix)
	if err != nil {
		return nil, nil, err
	}

	files := http.StripPrefix(constants.UploadRoutePrefix, http.FileServer(http.Dir(disk.Root())))
	return disk, files, nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

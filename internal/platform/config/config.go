// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when present; real environment variables
always win over it.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageDisk = "disk"
	StorageS3   = "s3"
)

// # Configuration Schema

// Config holds all runtime configuration for the Beacon API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL  string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns   int    `env:"DB_MAX_CONNS" envDefault:"10"`
	AutoMigrate  bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	MigrationDir string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional; login throttling falls back to memory.
	RedisURL      string `env:"REDIS_URL"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Token signing
	JWTSecret          string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiresIn       time.Duration `env:"JWT_EXPIRES_IN"         envDefault:"24h"`
	JWTRefreshExpireIn time.Duration `env:"JWT_REFRESH_EXPIRES_IN" envDefault:"168h"`

	// Bootstrap administrator, created once when no admin account exists
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`

	// Uploads
	StorageDriver string `env:"STORAGE_DRIVER"  envDefault:"disk"`
	UploadDir     string `env:"UPLOAD_DIR"      envDefault:"./uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Object Storage (S3-compatible)
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"   envDefault:"auto"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Cross-Origin Resource Sharing
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// Per-IP limiter for the whole API
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"100"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"150"`

	// Log file sink (rotated by lumberjack). Empty disables the file.
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB"  envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS"  envDefault:"5"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current environment into a [Config] and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks cross-field rules env tags cannot express.
func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDisk:
	case StorageS3:
		if c.S3Bucket == "" {
			return errors.New("config: S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.DBMaxConns < 1 {
		return errors.New("config: DB_MAX_CONNS must be positive")
	}

	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		return errors.New("config: ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	c.S3PublicURL = strings.TrimRight(c.S3PublicURL, "/")
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the configured CORS origins.
func (c *Config) AllowedOrigins() []string {
	return c.CORSOrigins
}

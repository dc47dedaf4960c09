// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-posts server. It aggregates all sub-configurations and is populated by
// merging values from command-line flags, environment variables, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, static file and rate limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds settings of the blocking-call dispatcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// DatabaseURL is the conventional DATABASE_URL connection string.
	// It is used only when Storage.DB.DSN is not set by any other source.
	DatabaseURL string `env:"DATABASE_URL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:80").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory served under /tests/static/.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RateLimitRPS is the per-client request rate. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-client token bucket size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection and pool settings for the relational database.
type DB struct {
	// DSN is the connection string. A postgres:// or postgresql:// DSN selects
	// PostgreSQL; sqlite://, file: or a *.db path selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the number of open pooled connections.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps the number of idle pooled connections.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime is the maximum time a pooled connection is reused.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// AutoMigrate applies embedded migrations on startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Workers holds settings of the dispatcher that runs blocking storage calls.
type Workers struct {
	// BlockingPoolSize is the number of storage calls allowed in flight.
	// Env: WORKERS_BLOCKING_POOL_SIZE
	BlockingPoolSize int `env:"BLOCKING_POOL_SIZE"`

	// AcquireTimeout bounds the wait for a free dispatcher slot.
	// Env: WORKERS_ACQUIRE_TIMEOUT
	AcquireTimeout time.Duration `env:"ACQUIRE_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// dashboard client and the fixture server. It is populated by merging
// built-in defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound REST client that talks to the
	// user directory.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local endpoint-history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the fixture HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the dashboard writes its logs to. The terminal is
	// taken by the UI, so the client never logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the REST client.
type Adapter struct {
	// BaseURL is the user directory endpoint, e.g.
	// "https://example.com/version-test/api/1.1/obj/user". When set, the
	// dashboard starts with it already applied. When empty, the user types
	// it in.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single page request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// HistorySize is how many recent base URLs the dashboard offers.
	// Env: STORAGE_HISTORY_SIZE
	HistorySize int `env:"HISTORY_SIZE"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the SQLite file path (or ":memory:").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the fixture server.
type Server struct {
	// HTTPAddress is the TCP address the fixture server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// FixtureUsers is the size of the generated user directory.
	// Env: SERVER_FIXTURE_USERS
	FixtureUsers int `env:"FIXTURE_USERS"`

	// FixtureBrokenEvery makes every n-th generated user lack the
	// "authentication.email" object. Zero disables it.
	// Env: SERVER_FIXTURE_BROKEN_EVERY
	FixtureBrokenEvery int `env:"FIXTURE_BROKEN_EVERY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for go-journal.
// It is populated by merging command-line flags, environment variables (with
// an optional .env file) and an optional JSON file, then filling defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key in the JSON configuration file.
type StructuredConfig struct {
	// App holds settings of the journal services.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds the database settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Log controls where and how verbosely the application logs.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`

	// EnvFilePath is the optional path to a dotenv file loaded into the
	// process environment before environment variables are read.
	// Populated via the ENV_FILE environment variable or the --env-file flag.
	EnvFilePath string `env:"ENV_FILE" json:"-"`
}

// App holds settings of the journal and access services.
type App struct {
	// PinHashCost is the bcrypt cost used when a PIN is set.
	// Env: APP_PIN_HASH_COST
	PinHashCost int `env:"PIN_HASH_COST" json:"pin_hash_cost"`

	// PageSize is the number of entries returned by listings when the
	// caller does not ask for a specific limit.
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE" json:"page_size"`
}

// Storage groups the configuration of the persistence layer.
type Storage struct {
	// DB holds the database file settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the single-file SQLite database.
type DB struct {
	// DSN is the path of the database file. Parent directories are created
	// on first use.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`

	// Driver selects the database/sql driver: "sqlite3" (cgo, default) or
	// "sqlite" (pure Go).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" json:"driver"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name. Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// File is the path log entries are appended to. Env: LOG_FILE
	File string `env:"FILE" json:"file"`
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration. flagCfg holds values bound to command-line flags (see
// [BindFlags]) and must already be parsed; it may be nil.
//
// For every field the first non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables (after loading the dotenv file, if any)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flagCfg).
		withDotEnv().
		withEnv().
		withJSON().
		build()
}

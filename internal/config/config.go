// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// VaultConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type VaultConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational database and the generated-password side file.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Printed at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// CredentialHashKey is the HMAC key used when hashing account
	// credentials before storage or comparison. Changing it invalidates
	// every stored credential hash.
	// Env: APP_CREDENTIAL_HASH_KEY
	CredentialHashKey string `env:"CREDENTIAL_HASH_KEY"`
}

// Storage groups the configuration for all storage backends used by the
// vault.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for the
	// generated-password side channel.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "sqlite3" (default, local
	// data file) or "pgx" (PostgreSQL).
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For sqlite3 it is the path of the local
	// database file (created if absent); for pgx it is a PostgreSQL
	// connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the generated-password side channel.
type Files struct {
	// GeneratedPasswordsPath is the path of the flat append-only file the
	// front-end uses to keep generated-but-unsaved passwords. Empty
	// disables the side file.
	// Env: STORAGE_FILES_GENERATED_PASSWORDS_PATH
	GeneratedPasswordsPath string `env:"GENERATED_PASSWORDS_PATH"`
}

// Default connection settings applied by build() when no source supplies
// them. The vault must always be able to start against a local data file
// with zero configuration.
const (
	DefaultDBDriver = "sqlite3"
	DefaultDSN      = "passvault.db"

	// DefaultCredentialHashKey keeps zero-config startup working on a
	// single-user workstation. Deployments that care should override it.
	DefaultCredentialHashKey = "passvault-local"
)

// GetVaultConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *VaultConfig or an error if any source fails to
// load or the final config fails validation.
func GetVaultConfig() (*VaultConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-exam-watermark server and client. It aggregates all sub-configurations
// and is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as signing keys, token
	// parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs and report fan-out.
	Workers Workers `envPrefix:"WORKERS_"`

	// Watermark holds the colors of the background dot pattern.
	Watermark Watermark `envPrefix:"WATERMARK_"`

	// Exam identifies the exam attempt a client session works on.
	Exam Exam `envPrefix:"EXAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control signing,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey keys the hash that derives observer watermark tokens from
	// user ids. Changing it changes every observer token.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: "postgres://" and "postgresql://"
	// URLs open PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the address and timeout the client uses for server calls.
type Adapter struct {
	// HTTPAddress is the base address of the server, "host:port" or a URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer JWT sent with exam page calls. The server takes
	// the user id and role from it.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background processing.
type Workers struct {
	// CompactInterval is how often closed attempts get their snapshots
	// compacted. Zero disables the job.
	// Env: WORKERS_COMPACT_INTERVAL
	CompactInterval time.Duration `env:"COMPACT_INTERVAL"`

	// ReportConcurrency caps how many attempts an exam report scans at once.
	// Env: WORKERS_REPORT_CONCURRENCY
	ReportConcurrency int `env:"REPORT_CONCURRENCY"`
}

// Watermark holds the dot pattern palette as CSS hex colors. Empty values
// fall back to the built-in palette.
type Watermark struct {
	Background string `env:"BACKGROUND"`
	Start      string `env:"START"`
	Bit        string `env:"BIT"`
}

// Exam selects the exam attempt the client works on.
type Exam struct {
	ExamID    int64  `env:"ID"`
	AttemptID int64  `env:"ATTEMPT_ID"`
	UserID    int64  `env:"USER_ID"`
	UserName  string `env:"USER_NAME"`

	// Questions are shown one per answer field. Env values are
	// separated by "|".
	Questions []string `env:"QUESTIONS" envSeparator:"|"`

	// Duration is the time the user has for the attempt. When it runs out
	// the attempt is abandoned. Zero means no limit.
	Duration time.Duration `env:"DURATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetEnvConfig is [GetStructuredConfig] without command-line flags, for
// tools that parse flags of their own.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

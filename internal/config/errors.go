package config

import "errors"

// Validation errors returned by validate when configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidWatermarkConfigs indicates a palette color that is not a
	// CSS hex color.
	ErrInvalidWatermarkConfigs = errors.New("invalid watermark configuration")
	// ErrInvalidExamConfigs indicates that the client was not told which
	// exam attempt to work on.
	ErrInvalidExamConfigs = errors.New("invalid exam configuration")
	// ErrParsingFlags wraps command-line parsing failures.
	ErrParsingFlags = errors.New("error parsing flags")
)

package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidBatchSize is returned when the audit concurrency is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the request body limit is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrEmptyListenAddress is returned when the server has no address to listen on.
	ErrEmptyListenAddress = errors.New("empty listen address")
)

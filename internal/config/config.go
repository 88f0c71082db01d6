package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "passmeter"

	// DefaultBatchSize is the number of passwords analyzed concurrently during an audit.
	DefaultBatchSize = 10

	// DefaultListenAddress is where the HTTP API listens.
	DefaultListenAddress = ":5000"

	// DefaultMaxBodySize limits the request body of POST /api/analyze.
	// A password request is a few dozen bytes; 4 KiB leaves room for long passphrases.
	DefaultMaxBodySize = 4 * 1024

	// DefaultMaxConnections caps simultaneously accepted API connections.
	DefaultMaxConnections = 256

	// DefaultShutdownTimeout bounds how long the server waits for in-flight requests.
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds all runtime options. It is populated from defaults, the
// configuration file and CLI flags, in that order, and passed down
// explicitly rather than kept in global state.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool

	// BatchSize is the audit concurrency.
	BatchSize int

	// ConfigFilePath is the explicit configuration file path. When empty,
	// .passmeter is searched in the current and home directories.
	ConfigFilePath string

	// File holds the loaded configuration file, or nil when there is none.
	File *File

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// ShowPassword prints passwords in reports instead of masking them.
	ShowPassword bool

	// DBDir is the directory holding the audit history database.
	DBDir string

	// SaveToDB stores audit summaries in the history database.
	SaveToDB bool

	// ListenAddress is the HTTP API address in "host:port" form.
	ListenAddress string

	// MaxBodySize is the maximum request body size in bytes.
	MaxBodySize int64

	// MaxConnections caps simultaneously accepted API connections.
	MaxConnections int

	// AllowedOrigins lists the CORS origins allowed by the API. Empty allows any origin.
	AllowedOrigins []string

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize:       DefaultBatchSize,
		DBDir:           XDGDataDir(),
		SaveToDB:        true,
		ListenAddress:   DefaultListenAddress,
		MaxBodySize:     DefaultMaxBodySize,
		MaxConnections:  DefaultMaxConnections,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ApplyFile copies the server settings of f into c. Zero values in f keep
// the current setting. CLI flags are applied afterwards and win.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.File = f

	if f.Server.Address != "" {
		c.ListenAddress = f.Server.Address
	}
	if f.Server.MaxBodyBytes != 0 {
		c.MaxBodySize = f.Server.MaxBodyBytes
	}
	if f.Server.MaxConnections != 0 {
		c.MaxConnections = f.Server.MaxConnections
	}
	if len(f.Server.AllowedOrigins) > 0 {
		c.AllowedOrigins = f.Server.AllowedOrigins
	}
	if f.Audit.BatchSize != 0 {
		c.BatchSize = f.Audit.BatchSize
	}
}

// XDGDataDir returns the XDG data directory for passmeter.
// On Linux: ~/.local/share/passmeter
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passmeter.
// On Linux: ~/.config/passmeter
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}
	if c.ListenAddress == "" {
		return ErrEmptyListenAddress
	}
	return nil
}

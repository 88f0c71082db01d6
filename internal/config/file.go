package config

import (
	"path/filepath"

	"github.com/nao1215/passmeter/internal/reference"
)

// File represents the structure of the .passmeter configuration file.
type File struct {
	// References extends the built-in reference tables.
	References ReferencesConfig `yaml:"references,omitempty"`

	// Server configures the HTTP API.
	Server ServerConfig `yaml:"server,omitempty"`

	// Audit configures batch audits.
	Audit AuditConfig `yaml:"audit,omitempty"`

	// dir is the directory of the loaded file, used to resolve relative paths.
	dir string
}

// ReferencesConfig lists entries added to the built-in tables, either
// inline or from wordlist files with one entry per line.
type ReferencesConfig struct {
	WeakPasswordsFile    string `yaml:"weakPasswordsFile,omitempty"`
	CommonWordsFile      string `yaml:"commonWordsFile,omitempty"`
	KeyboardPatternsFile string `yaml:"keyboardPatternsFile,omitempty"`

	WeakPasswords    []string `yaml:"weakPasswords,omitempty"`
	CommonWords      []string `yaml:"commonWords,omitempty"`
	KeyboardPatterns []string `yaml:"keyboardPatterns,omitempty"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Address        string   `yaml:"address,omitempty"`
	MaxBodyBytes   int64    `yaml:"maxBodyBytes,omitempty"`
	MaxConnections int      `yaml:"maxConnections,omitempty"`
	AllowedOrigins []string `yaml:"allowedOrigins,omitempty"`
}

// AuditConfig holds batch audit settings.
type AuditConfig struct {
	BatchSize int `yaml:"batchSize,omitempty"`
}

// LoadOptions converts the references section into reference.LoadOptions.
// Relative file paths are resolved against the configuration file's directory.
func (f *File) LoadOptions() reference.LoadOptions {
	if f == nil {
		return reference.LoadOptions{}
	}
	r := f.References
	return reference.LoadOptions{
		WeakPasswordsFile:    f.resolve(r.WeakPasswordsFile),
		CommonWordsFile:      f.resolve(r.CommonWordsFile),
		KeyboardPatternsFile: f.resolve(r.KeyboardPatternsFile),
		WeakPasswords:        r.WeakPasswords,
		CommonWords:          r.CommonWords,
		KeyboardPatterns:     r.KeyboardPatterns,
	}
}

// Tables loads the reference tables extended by the references section.
// A nil File yields the defaults.
func (f *File) Tables() (*reference.Tables, error) {
	return reference.Load(f.LoadOptions())
}

func (f *File) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || f.dir == "" {
		return path
	}
	return filepath.Join(f.dir, path)
}

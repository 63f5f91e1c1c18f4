package types

import "errors"

// Config selects the repository backend and the presentation format.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	Format  string `json:"format" yaml:"format"`
}

// Supported backend names.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// knownFormats lists the output formats that Validate accepts.
var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// Validate checks that the Config is well-formed. An empty Format is
// accepted and means FormatText.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Format != "" && !knownFormats[c.Format] {
		return ErrUnknownFormat
	}
	return nil
}

// IsKnownFormat reports whether format names a supported output format.
func IsKnownFormat(format string) bool {
	return knownFormats[format]
}

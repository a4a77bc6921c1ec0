// Package backend assembles a store (and optional event publisher) from
// configuration. The CLI and tests pick between the JSON file, SQLite and
// in-memory backends through here.
package backend

import (
	"fmt"

	"expenses/internal/config"
	"expenses/internal/store"
)

// Type selects the store implementation.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{JSONBackend, SQLiteBackend, MemoryBackend}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the assembled store and an optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Config holds what the factory needs to build a backend.
type Config struct {
	Type Type

	// JSON file specific
	DataFile string

	// SQLite specific
	SQLiteDBPath string
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		DataFile:     appConfig.DataFile,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case JSONBackend:
		if c.DataFile == "" {
			return fmt.Errorf("data file path is required for json backend")
		}
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case MemoryBackend:
		// Nothing to validate; the memory backend has no settings.
	}

	return nil
}

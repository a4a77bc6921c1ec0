package backend

import (
	"fmt"
	"log/slog"

	"expenses/internal/store/jsonfile"
	"expenses/internal/store/memory"
	"expenses/internal/store/sqlite"
)

// Factory creates store backends based on configuration.
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		logger: logger,
	}
}

// CreateBackend builds the store selected by config.
func (f *Factory) CreateBackend(config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case JSONBackend:
		return f.createJSONBackend(config)
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *Factory) createJSONBackend(config Config) (*Result, error) {
	st, err := jsonfile.New(config.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JSON file store: %w", err)
	}

	f.logger.Info("Initialized JSON file backend", "data_file", config.DataFile)

	return &Result{
		Store:   st,
		Cleanup: nil, // No cleanup needed for the file backend
	}, nil
}

func (f *Factory) createSQLiteBackend(config Config) (*Result, error) {
	st, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)

	return &Result{
		Store:   st,
		Cleanup: st.Close,
	}, nil
}

func (f *Factory) createMemoryBackend() (*Result, error) {
	st := memory.New()

	f.logger.Info("Initialized memory backend")

	return &Result{
		Store:   st,
		Cleanup: nil, // No cleanup needed for the memory backend
	}, nil
}

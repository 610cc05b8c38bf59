package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/stockroom/internal/csvfile"
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/jsonl"
	"github.com/mesh-intelligence/stockroom/internal/sqlite"
	"github.com/mesh-intelligence/stockroom/pkg/logger"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// openStorage returns the Storage for cfg.Backend. The caller must Close it.
func openStorage(cfg types.Config) (types.Storage, error) {
	switch cfg.Backend {
	case types.BackendCSV:
		return csvfile.New(cfg.Path()), nil
	case types.BackendJSONL:
		return jsonl.New(cfg.Path()), nil
	case types.BackendSQLite:
		backend, err := sqlite.Open(cfg.Path())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return backend, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

// newLogger builds the process logger from the resolved settings.
func newLogger() zerolog.Logger {
	return logger.New(resolved.log).With().Str("backend", resolved.storage.Backend).Logger()
}

// loadStore opens storage and loads it into a fresh store. The caller must
// Close the returned storage.
func loadStore(log zerolog.Logger) (*inventory.Store, types.Storage, error) {
	storage, err := openStorage(resolved.storage)
	if err != nil {
		return nil, nil, err
	}

	store := inventory.New(log)
	if _, err := store.Load(storage); err != nil {
		storage.Close()
		return nil, nil, err
	}
	return store, storage, nil
}

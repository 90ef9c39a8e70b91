package kv

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// BackendType selects a Store implementation.
type BackendType string

const (
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// Valid reports whether t names a known backend.
func (t BackendType) Valid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// OpenResult bundles an opened store with its cleanup function.
type OpenResult struct {
	Store   Store
	Cleanup func() error
}

// Open creates the configured backend. dataDir is used by the file
// backend, dbPath by the sqlite backend.
func Open(backend BackendType, dataDir, dbPath string) (*OpenResult, error) {
	switch backend {
	case FileBackend:
		store, err := NewFileStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		log.Info().Str("data_dir", dataDir).Msg("Initialized file storage backend")
		return &OpenResult{Store: store, Cleanup: func() error { return nil }}, nil

	case SQLiteBackend:
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		log.Info().Str("db_path", dbPath).Msg("Initialized sqlite storage backend")
		return &OpenResult{Store: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		log.Info().Msg("Initialized in-memory storage backend")
		return &OpenResult{Store: NewMemoryStore(), Cleanup: func() error { return nil }}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

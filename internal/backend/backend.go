// Package backend selects and constructs the persistence medium behind the
// store slots.
package backend

import (
	"fmt"

	applog "spendtrack/internal/log"
	"spendtrack/internal/store"
	filestore "spendtrack/internal/store/file"
	memstore "spendtrack/internal/store/memory"
	sqlitestore "spendtrack/internal/store/sqlite"
)

// Type identifies a persistence medium.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid reports whether the backend type is one of the known media.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds the settings the factory needs per medium.
type Config struct {
	Type Type

	// File backend
	DataDir string

	// SQLite backend
	SQLiteDBPath string
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result bundles the constructed store with its cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Create builds the store for the configured medium.
func Create(cfg Config, logger *applog.Logger) (*Result, error) {
	logger = logger.WithComponent(applog.ComponentBackend)

	switch cfg.Type {
	case FileBackend:
		st, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("create file backend: %w", err)
		}
		logger.Info("initialized file backend", "data_dir", cfg.DataDir)
		return &Result{Store: st, Cleanup: func() error { return nil }}, nil

	case SQLiteBackend:
		st, err := sqlitestore.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		logger.Info("initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: st, Cleanup: st.Close}, nil

	case MemoryBackend:
		logger.Info("initialized memory backend")
		return &Result{Store: memstore.New(), Cleanup: func() error { return nil }}, nil

	default:
		return nil, fmt.Errorf("unknown backend type %q", cfg.Type)
	}
}

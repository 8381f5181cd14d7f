// Package file implements a Store with one JSON file per slot. Writes go to a
// temp file in the same directory and are renamed into place, so a crash mid-
// write never leaves a half-written slot behind.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spendtrack/internal/store"
)

type Store struct {
	dir string
}

// New creates the data directory if needed and returns a file-backed store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return raw, nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace slot %s: %w", key, err)
	}
	return nil
}

// path maps a slot key to a file name, replacing separators so a key can
// never escape the data directory.
func (s *Store) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, safe+".json")
}

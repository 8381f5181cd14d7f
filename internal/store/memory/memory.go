// Package memory provides an in-process Store for tests and ephemeral runs.
package memory

import (
	"context"
	"errors"
	"sync"

	"spendtrack/internal/store"
)

type Store struct {
	mu    sync.Mutex
	slots map[string][]byte

	// FailSaves makes every Save return an error. Tests use it to exercise
	// the silent-failure contract of the slot layer.
	FailSaves bool
}

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.slots[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), raw...), nil
}

func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves {
		return errors.New("save rejected")
	}
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

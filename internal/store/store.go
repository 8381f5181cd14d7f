// Package store implements the persisted key/value slots backing the
// repositories. A Store holds named slots of raw JSON; Slot adds a typed view
// with a default value and write-through semantics.
//
// Durability is deliberately best-effort: a failed save is logged and
// swallowed, never surfaced to the caller. The in-memory value stays
// authoritative for the session. Recording an expense must never fail because
// the storage medium did.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	applog "spendtrack/internal/log"
)

// ErrNotFound is returned by Load when the slot has never been saved.
var ErrNotFound = errors.New("slot not found")

// Store reads and writes named slots of serialized data.
type Store interface {
	// Load returns the raw contents of a slot, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the slot unconditionally and synchronously.
	Save(ctx context.Context, key string, value []byte) error
}

// Slot is a typed view over a single store slot. Get returns the default when
// the slot is absent or corrupt; a corrupt slot is left untouched until the
// next explicit Put. Put writes through before returning and swallows storage
// errors.
type Slot[T any] struct {
	store  Store
	key    string
	def    []byte // default value, kept encoded so each fallback decodes a fresh copy
	logger *applog.Logger

	mu     sync.Mutex
	cur    T
	loaded bool
}

// NewSlot creates a typed slot with the given default value. The default is
// snapshotted at construction; later mutations of def do not leak in.
func NewSlot[T any](s Store, key string, def T, logger *applog.Logger) *Slot[T] {
	encoded, err := json.Marshal(def)
	if err != nil {
		// A default that cannot encode is a programming error.
		panic("store: unencodable slot default for " + key + ": " + err.Error())
	}
	return &Slot[T]{
		store:  s,
		key:    key,
		def:    encoded,
		logger: logger.WithComponent(applog.ComponentStore),
	}
}

// Get returns the current value, loading it from the store on first access.
func (s *Slot[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.cur = s.load()
		s.loaded = true
	}
	return s.cur
}

// Put replaces the current value and writes it through to the store. Storage
// failures are logged and swallowed; the new value stays authoritative in
// memory either way.
func (s *Slot[T]) Put(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = v
	s.loaded = true

	encoded, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("slot value not serializable, keeping in memory only",
			applog.FieldSlotKey, s.key, applog.FieldError, err.Error(),
			applog.FieldOperation, applog.OpSave)
		return
	}
	if err := s.store.Save(context.Background(), s.key, encoded); err != nil {
		s.logger.Warn("slot save failed, keeping in memory only",
			applog.FieldSlotKey, s.key, applog.FieldError, err.Error(),
			applog.FieldOperation, applog.OpSave)
	}
}

func (s *Slot[T]) load() T {
	var v T
	raw, err := s.store.Load(context.Background(), s.key)
	switch {
	case errors.Is(err, ErrNotFound):
		// First run: fall through to the default.
	case err != nil:
		s.logger.Warn("slot load failed, using default",
			applog.FieldSlotKey, s.key, applog.FieldError, err.Error(),
			applog.FieldOperation, applog.OpLoad)
	default:
		if err := json.Unmarshal(raw, &v); err == nil {
			return v
		}
		// Corrupt content: fall back to the default without overwriting the
		// stored slot, so a newer app version can still inspect it.
		s.logger.Warn("slot content corrupt, using default",
			applog.FieldSlotKey, s.key, applog.FieldOperation, applog.OpLoad)
	}
	// Decode into a fresh value so a partially parsed corrupt slot cannot
	// leak into the default.
	var def T
	if err := json.Unmarshal(s.def, &def); err != nil {
		// Cannot happen: def round-tripped through Marshal in NewSlot.
		panic("store: corrupt slot default for " + s.key)
	}
	return def
}

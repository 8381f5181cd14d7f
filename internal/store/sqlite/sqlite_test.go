package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"spendtrack/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "slots.db"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(context.Background(), "profile"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoadAndUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "profile", []byte(`{"name":"User"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := s.Load(ctx, "profile")
	if err != nil || string(raw) != `{"name":"User"}` {
		t.Fatalf("load = %q, %v", raw, err)
	}

	if err := s.Save(ctx, "profile", []byte(`{"name":"Ada"}`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	raw, _ = s.Load(ctx, "profile")
	if string(raw) != `{"name":"Ada"}` {
		t.Fatalf("upsert did not replace: %q", raw)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "expenses", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, "profile", []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := s.Load(ctx, "expenses")
	if err != nil || string(raw) != `[]` {
		t.Fatalf("expenses slot = %q, %v", raw, err)
	}
}

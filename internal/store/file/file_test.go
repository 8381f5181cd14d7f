package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"spendtrack/internal/store"
)

func TestLoadMissing(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.Load(context.Background(), "expenses"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "expenses", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := s.Load(ctx, "expenses")
	if err != nil || string(raw) != `[{"id":"1"}]` {
		t.Fatalf("load = %q, %v", raw, err)
	}

	// Overwrites are unconditional.
	if err := s.Save(ctx, "expenses", []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ = s.Load(ctx, "expenses")
	if string(raw) != `[]` {
		t.Fatalf("overwrite failed: %q", raw)
	}

	// No temp file left behind after a successful save.
	if _, err := os.Stat(filepath.Join(dir, "expenses.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestKeySanitized(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Save(context.Background(), "../escape", []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".._escape.json")); err != nil {
		t.Fatalf("sanitized file missing: %v", err)
	}
}

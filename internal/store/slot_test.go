package store_test

import (
	"context"
	"testing"

	applog "spendtrack/internal/log"
	"spendtrack/internal/store"
	"spendtrack/internal/store/memory"
)

func TestSlotDefaultWhenAbsent(t *testing.T) {
	slot := store.NewSlot(memory.New(), "numbers", []int{1, 2, 3}, applog.Discard())
	got := slot.Get()
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("expected default, got %v", got)
	}
}

func TestSlotPutThenGet(t *testing.T) {
	mem := memory.New()
	slot := store.NewSlot(mem, "greeting", "", applog.Discard())
	slot.Put("hello")
	if got := slot.Get(); got != "hello" {
		t.Fatalf("got %q", got)
	}

	// The write went through to the medium: a fresh slot over the same store
	// sees the saved value, as a page reload would.
	reloaded := store.NewSlot(mem, "greeting", "", applog.Discard())
	if got := reloaded.Get(); got != "hello" {
		t.Fatalf("reload got %q", got)
	}
}

func TestSlotCorruptFallsBackWithoutOverwriting(t *testing.T) {
	mem := memory.New()
	if err := mem.Save(context.Background(), "profile", []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	slot := store.NewSlot(mem, "profile", map[string]string{"name": "User"}, applog.Discard())
	got := slot.Get()
	if got["name"] != "User" {
		t.Fatalf("expected default on corrupt slot, got %v", got)
	}

	// The corrupt content stays in place until the next explicit save.
	raw, err := mem.Load(context.Background(), "profile")
	if err != nil || string(raw) != "{not json" {
		t.Fatalf("corrupt slot was touched: %q (err=%v)", raw, err)
	}

	slot.Put(map[string]string{"name": "Ada"})
	raw, _ = mem.Load(context.Background(), "profile")
	if string(raw) == "{not json" {
		t.Fatalf("save should overwrite the corrupt slot")
	}
}

func TestSlotSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	mem := memory.New()
	mem.FailSaves = true

	slot := store.NewSlot(mem, "expenses", []string(nil), applog.Discard())
	slot.Put([]string{"a", "b"})

	// Put must not panic or surface the error, and Get reflects the value.
	got := slot.Get()
	if len(got) != 2 {
		t.Fatalf("in-memory value lost: %v", got)
	}
}

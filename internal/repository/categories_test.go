package repository

import (
	"strings"
	"testing"

	applog "spendtrack/internal/log"
	"spendtrack/internal/store/memory"
)

func TestCategoriesDefaults(t *testing.T) {
	reg := NewCategoryRegistry(memory.New(), applog.Discard())
	got := reg.Categories()
	want := []string{"Food", "Transport", "Bills", "Shopping", "Leisure", "Other"}
	if len(got) != len(want) {
		t.Fatalf("expected %d defaults, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: %s != %s", i, got[i], want[i])
		}
	}
}

func TestRegister(t *testing.T) {
	reg := NewCategoryRegistry(memory.New(), applog.Discard())

	res, _ := reg.Register("Subscriptions")
	if res != Registered {
		t.Fatalf("expected Registered, got %s", res)
	}
	cats := reg.Categories()
	if cats[len(cats)-1] != "Subscriptions" {
		t.Fatalf("custom category not offered: %v", cats)
	}

	// Exact match, case-insensitive, is a duplicate.
	res, match := reg.Register("subscriptions")
	if res != AlreadyExists || match != "Subscriptions" {
		t.Fatalf("expected AlreadyExists/Subscriptions, got %s/%s", res, match)
	}
	res, _ = reg.Register("Food")
	if res != AlreadyExists {
		t.Fatalf("defaults are duplicates too, got %s", res)
	}
}

func TestRegisterInvalid(t *testing.T) {
	reg := NewCategoryRegistry(memory.New(), applog.Discard())
	cases := []string{"", "   ", strings.Repeat("x", 41)}
	for i, name := range cases {
		if res, _ := reg.Register(name); res != Invalid {
			t.Fatalf("case %d: expected Invalid, got %s", i, res)
		}
	}
}

func TestRegisterSuggestsNearMatch(t *testing.T) {
	reg := NewCategoryRegistry(memory.New(), applog.Discard())

	// "Fod" is one edit away from "Food": registered, but with a hint.
	res, suggestion := reg.Register("Fod")
	if res != Registered {
		t.Fatalf("expected Registered, got %s", res)
	}
	if suggestion != "Food" {
		t.Fatalf("expected suggestion Food, got %q", suggestion)
	}

	// A clearly distinct name carries no suggestion.
	_, suggestion = reg.Register("Vacation")
	if suggestion != "" {
		t.Fatalf("unexpected suggestion %q", suggestion)
	}
}

func TestCustomCategoriesPersist(t *testing.T) {
	mem := memory.New()
	reg := NewCategoryRegistry(mem, applog.Discard())
	if res, _ := reg.Register("Pets"); res != Registered {
		t.Fatalf("register failed")
	}

	reloaded := NewCategoryRegistry(mem, applog.Discard())
	cats := reloaded.Categories()
	if cats[len(cats)-1] != "Pets" {
		t.Fatalf("custom category lost across sessions: %v", cats)
	}
}

package repository

import (
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"spendtrack/internal/core"
	applog "spendtrack/internal/log"
	"spendtrack/internal/store"
)

const categoriesKey = "categories"

// maxCategoryLen bounds user-supplied category names.
const maxCategoryLen = 40

// RegisterResult is the outcome of registering a custom category.
type RegisterResult string

const (
	Registered    RegisterResult = "registered"
	AlreadyExists RegisterResult = "already_exists"
	Invalid       RegisterResult = "invalid"
)

// CategoryRegistry owns the known category set: the fixed defaults plus any
// custom names users registered. Custom names are persisted in their own slot
// so they are offered again on the next session.
type CategoryRegistry struct {
	mu     sync.Mutex
	slot   *store.Slot[[]string]
	custom []string
	logger *applog.Logger
}

func NewCategoryRegistry(st store.Store, logger *applog.Logger) *CategoryRegistry {
	slot := store.NewSlot(st, categoriesKey, []string(nil), logger)
	return &CategoryRegistry{
		slot:   slot,
		custom: slot.Get(),
		logger: logger.WithComponent(applog.ComponentCategory),
	}
}

// Categories returns the defaults followed by registered custom names.
func (c *CategoryRegistry) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := core.DefaultCategories()
	return append(out, c.custom...)
}

// Register validates and records a new category name. The suggestion return
// is a "did you mean" hint: the closest existing category within an edit
// distance of two, empty when there is none. An exact (case-insensitive)
// match reports AlreadyExists instead of registering a duplicate.
func (c *CategoryRegistry) Register(name string) (RegisterResult, string) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCategoryLen {
		return Invalid, ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing := append(core.DefaultCategories(), c.custom...)
	suggestion := ""
	best := 3 // only distances 1 and 2 count as "near"
	for _, known := range existing {
		if strings.EqualFold(known, name) {
			return AlreadyExists, known
		}
		d := levenshtein.ComputeDistance(strings.ToLower(known), strings.ToLower(name))
		if d < best {
			best = d
			suggestion = known
		}
	}

	c.custom = append(c.custom, name)
	c.slot.Put(c.custom)
	c.logger.Info("category registered",
		applog.FieldCategory, name,
		applog.FieldOperation, applog.OpRegister)
	return Registered, suggestion
}

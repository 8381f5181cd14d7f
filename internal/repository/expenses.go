// Package repository owns the persisted collections: the expense list, the
// category registry and the profile singleton. Each repository holds its
// state in memory and writes through to its store slot on every mutation, so
// a restart immediately after a mutation reflects it.
package repository

import (
	"sync"

	"github.com/google/uuid"

	"spendtrack/internal/core"
	applog "spendtrack/internal/log"
	"spendtrack/internal/store"
)

const expensesKey = "expenses"

// ExpenseRepository owns the expense collection, kept in insertion order.
type ExpenseRepository struct {
	mu     sync.Mutex
	slot   *store.Slot[[]core.Expense]
	items  []core.Expense
	logger *applog.Logger
	today  func() core.Date
}

func NewExpenseRepository(st store.Store, logger *applog.Logger) *ExpenseRepository {
	slot := store.NewSlot(st, expensesKey, []core.Expense(nil), logger)
	return &ExpenseRepository{
		slot:   slot,
		items:  slot.Get(),
		logger: logger.WithComponent(applog.ComponentExpense),
		today:  core.Today,
	}
}

// List returns the expenses in insertion order (not date order).
func (r *ExpenseRepository) List() []core.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Expense(nil), r.items...)
}

// Add validates the fields, assigns a fresh id and appends the expense. Any
// id on the input is discarded.
func (r *ExpenseRepository) Add(e core.Expense) (core.Expense, error) {
	e.ID = uuid.NewString()
	if err := e.Validate(r.today()); err != nil {
		return core.Expense{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	r.slot.Put(r.items)

	r.logger.Info("expense added",
		applog.FieldExpenseID, e.ID,
		applog.FieldCategory, e.Category,
		applog.FieldAmount, e.Amount,
		applog.FieldOperation, applog.OpCreate)
	return e, nil
}

// Update replaces the record with a matching id. The id itself is immutable.
// Returns core.ErrExpenseNotFound when no record matches.
func (r *ExpenseRepository) Update(e core.Expense) error {
	if err := e.Validate(r.today()); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == e.ID {
			r.items[i] = e
			r.slot.Put(r.items)
			r.logger.Info("expense updated",
				applog.FieldExpenseID, e.ID,
				applog.FieldOperation, applog.OpUpdate)
			return nil
		}
	}
	return core.ErrExpenseNotFound
}

// Delete removes the record with the given id. Deleting an unknown id is a
// no-op, so the operation is idempotent.
func (r *ExpenseRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.slot.Put(r.items)
			r.logger.Info("expense deleted",
				applog.FieldExpenseID, id,
				applog.FieldOperation, applog.OpDelete)
			return
		}
	}
}

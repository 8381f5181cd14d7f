package core

import (
	"sort"
	"time"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MonthTotal is the summed amount for a single calendar month.
type MonthTotal struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Amount float64    `json:"amount"`
}

// Label formats the month as a short display label, e.g. "Dec 2024".
func (m MonthTotal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// Insights holds derived statistics for an expense collection. All fields are
// zero for an empty collection; Average is never NaN.
type Insights struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
}

// Filter returns the expenses matching the spec, preserving input order.
func Filter(expenses []Expense, spec FilterSpec) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if spec.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of all expenses. Zero for an empty collection.
func Total(expenses []Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// CategoryTotals sums amounts per category. Categories appear in
// first-encountered order and only when they have at least one expense.
func CategoryTotals(expenses []Expense) []CategoryAmount {
	idx := make(map[string]int)
	var out []CategoryAmount
	for _, e := range expenses {
		if i, ok := idx[e.Category]; ok {
			out[i].Amount += e.Amount
			continue
		}
		idx[e.Category] = len(out)
		out = append(out, CategoryAmount{Name: e.Category, Amount: e.Amount})
	}
	return out
}

// MonthlyTotals sums amounts per calendar month, ordered chronologically
// ascending. Ordering is by year and month, never by the formatted label, so
// December 2024 sorts before January 2025.
func MonthlyTotals(expenses []Expense) []MonthTotal {
	type key struct {
		year  int
		month time.Month
	}
	idx := make(map[key]int)
	var out []MonthTotal
	for _, e := range expenses {
		k := key{e.Date.Year(), e.Date.Month()}
		if i, ok := idx[k]; ok {
			out[i].Amount += e.Amount
			continue
		}
		idx[k] = len(out)
		out = append(out, MonthTotal{Year: k.year, Month: k.month, Amount: e.Amount})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// Summarize computes count, average and maximum amount for the collection.
func Summarize(expenses []Expense) Insights {
	ins := Insights{Count: len(expenses)}
	if ins.Count == 0 {
		return ins
	}
	for _, e := range expenses {
		if e.Amount > ins.Max {
			ins.Max = e.Amount
		}
	}
	ins.Average = Total(expenses) / float64(ins.Count)
	return ins
}

// TopCategories returns the n categories with the greatest totals. Ties keep
// the first-encountered order of the input. Fewer than n categories yields a
// shorter slice; padding with placeholders is the caller's concern.
func TopCategories(totals []CategoryAmount, n int) []CategoryAmount {
	out := append([]CategoryAmount(nil), totals...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

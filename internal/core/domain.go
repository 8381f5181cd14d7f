package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

// CategoryAll is the filter value that matches every category.
const CategoryAll = "all"

type (
	// Date is a calendar date with no time-of-day component. The zero value
	// means "unset" for optional dates such as filter bounds.
	Date struct {
		t time.Time
	}

	// Expense is a single recorded expense. The ID is assigned by the
	// repository at creation time and never changes afterwards.
	Expense struct {
		ID           string  `json:"id"`
		Title        string  `json:"title"`
		Amount       float64 `json:"amount"`
		Category     string  `json:"category"`
		Date         Date    `json:"date"`
		Notes        string  `json:"notes,omitempty"`
		ReceiptImage string  `json:"receiptImage,omitempty"` // data URI, stored inline
	}

	// UserProfile is the singleton profile record.
	UserProfile struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Photo    string `json:"photo"`
		Currency string `json:"currency"`
	}

	// FilterSpec narrows an expense collection. It is transient and never
	// persisted. Category is either CategoryAll or an exact category string;
	// zero Start/End dates leave that bound open. Both bounds are inclusive.
	FilterSpec struct {
		Category string
		Start    Date
		End      Date
	}
)

var (
	ErrEmptyTitle    = errors.New("empty title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
	ErrFutureDate    = errors.New("date is in the future")

	ErrExpenseNotFound = errors.New("expense not found")
)

// DefaultCategories returns the fixed default category set offered in the UI.
// Expenses may carry arbitrary category strings beyond this set.
func DefaultCategories() []string {
	return []string{"Food", "Transport", "Bills", "Shopping", "Leisure", "Other"}
}

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Format formats the date with the given time layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, matching the on-disk
// slot format. A zero date encodes as the empty string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a YYYY-MM-DD string; empty and null mean unset.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Validate checks the expense against the data-model invariants. The caller
// supplies today's date so the future-date rule stays deterministic in tests.
func (e Expense) Validate(today Date) error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if e.Date.After(today) {
		return ErrFutureDate
	}
	return nil
}

// Matches reports whether the expense satisfies the filter predicate.
func (f FilterSpec) Matches(e Expense) bool {
	if f.Category != "" && f.Category != CategoryAll && e.Category != f.Category {
		return false
	}
	if !f.Start.IsZero() && e.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && e.Date.After(f.End) {
		return false
	}
	return true
}

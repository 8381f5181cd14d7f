package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"spendtrack/internal/core"
	"spendtrack/internal/repository"
)

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a single-message JSON error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFieldErrors writes a 422 body mapping field names to messages.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fields})
}

// methodNotAllowed sets the Allow header and writes a 405 body.
func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// parseFilter reads the category/start/end query parameters into a filter.
// Absent parameters leave that dimension open.
func parseFilter(r *http.Request) (core.FilterSpec, error) {
	spec := core.FilterSpec{Category: core.CategoryAll}

	if v := strings.TrimSpace(r.URL.Query().Get("category")); v != "" {
		spec.Category = v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("start")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.FilterSpec{}, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		spec.Start = d
	}
	if v := strings.TrimSpace(r.URL.Query().Get("end")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.FilterSpec{}, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		spec.End = d
	}

	return spec, nil
}

// expenseField maps a validation error to the offending request field.
func expenseField(err error) string {
	switch {
	case errors.Is(err, core.ErrEmptyTitle):
		return "title"
	case errors.Is(err, core.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, core.ErrEmptyCategory):
		return "category"
	case errors.Is(err, core.ErrInvalidDate), errors.Is(err, core.ErrFutureDate):
		return "date"
	}
	return ""
}

// profileField maps a profile validation error to the offending field.
func profileField(err error) string {
	switch {
	case errors.Is(err, repository.ErrEmptyName):
		return "name"
	case errors.Is(err, repository.ErrInvalidEmail):
		return "email"
	case errors.Is(err, repository.ErrUnknownCurrency):
		return "currency"
	}
	return ""
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

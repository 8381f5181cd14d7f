package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"spendtrack/internal/core"
	"spendtrack/internal/currency"
	applog "spendtrack/internal/log"
)

// expenseListResponse is the body for GET /api/expenses.
type expenseListResponse struct {
	Expenses       []core.Expense `json:"expenses"`
	Total          float64        `json:"total"`
	FormattedTotal string         `json:"formattedTotal"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := core.Filter(s.expenses.List(), spec)
	total := core.Total(filtered)
	if filtered == nil {
		filtered = []core.Expense{}
	}

	writeJSON(w, http.StatusOK, expenseListResponse{
		Expenses:       filtered,
		Total:          total,
		FormattedTotal: currency.Format(total, s.profile.Currency()),
	})
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var exp core.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	exp.ID = ""
	exp.Title = sanitizeInput(exp.Title)
	exp.Category = sanitizeInput(exp.Category)
	exp.Notes = sanitizeInput(exp.Notes)

	created, err := s.expenses.Add(exp)
	if err != nil {
		if field := expenseField(err); field != "" {
			writeFieldErrors(w, map[string]string{field: err.Error()})
			return
		}
		s.logger.ErrorContext(r.Context(), "expense create failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "could not save expense")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "expense not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateExpense(w, r, id)
	case http.MethodDelete:
		s.deleteExpense(w, r, id)
	default:
		methodNotAllowed(w, "PUT, DELETE")
	}
}

func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request, id string) {
	var exp core.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	exp.ID = id
	exp.Title = sanitizeInput(exp.Title)
	exp.Category = sanitizeInput(exp.Category)
	exp.Notes = sanitizeInput(exp.Notes)

	if err := s.expenses.Update(exp); err != nil {
		if errors.Is(err, core.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		if field := expenseField(err); field != "" {
			writeFieldErrors(w, map[string]string{field: err.Error()})
			return
		}
		s.logger.ErrorContext(r.Context(), "expense update failed",
			applog.FieldExpenseID, id, applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "could not save expense")
		return
	}

	writeJSON(w, http.StatusOK, exp)
}

// deleteExpense is idempotent: deleting an unknown id still returns 204.
func (s *Server) deleteExpense(w http.ResponseWriter, _ *http.Request, id string) {
	s.expenses.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"spendtrack/internal/repository"
)

type registerCategoryRequest struct {
	Name string `json:"name"`
}

type registerCategoryResponse struct {
	Result     repository.RegisterResult `json:"result"`
	Category   string                    `json:"category,omitempty"`
	Suggestion string                    `json:"suggestion,omitempty"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string][]string{"categories": s.categories.Categories()})
	case http.MethodPost:
		s.registerCategory(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) registerCategory(w http.ResponseWriter, r *http.Request) {
	var req registerCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := sanitizeInput(req.Name)
	result, hint := s.categories.Register(name)
	switch result {
	case repository.Invalid:
		writeFieldErrors(w, map[string]string{"name": "category name is empty or too long"})
	case repository.AlreadyExists:
		// hint carries the canonical casing of the existing name
		writeJSON(w, http.StatusOK, registerCategoryResponse{Result: result, Category: hint})
	default:
		writeJSON(w, http.StatusCreated, registerCategoryResponse{
			Result:     result,
			Category:   name,
			Suggestion: hint,
		})
	}
}

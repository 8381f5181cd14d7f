package http

import (
	"encoding/json"
	"net/http"

	"spendtrack/internal/core"
	applog "spendtrack/internal/log"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.profile.Get())
	case http.MethodPut:
		s.updateProfile(w, r)
	default:
		methodNotAllowed(w, "GET, PUT")
	}
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var p core.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.Name = sanitizeInput(p.Name)
	p.Email = sanitizeInput(p.Email)

	if err := s.profile.Update(p); err != nil {
		if field := profileField(err); field != "" {
			writeFieldErrors(w, map[string]string{field: err.Error()})
			return
		}
		s.logger.ErrorContext(r.Context(), "profile update failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "could not save profile")
		return
	}

	// Re-read so the response carries the defaulted photo
	writeJSON(w, http.StatusOK, s.profile.Get())
}

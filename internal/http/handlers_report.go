package http

import (
	"bytes"
	"net/http"
	"strconv"

	"spendtrack/internal/core"
	applog "spendtrack/internal/log"
)

// handleReport renders the filtered expense collection as a PDF attachment.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	spec, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filtered := core.Filter(s.expenses.List(), spec)

	// Render to a buffer first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := s.exporter.Render(&buf, s.profile.Get(), filtered); err != nil {
		s.logger.ErrorContext(r.Context(), "report render failed",
			applog.FieldOperation, applog.OpRender, applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "could not render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="expense-report.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

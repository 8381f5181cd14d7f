package http

import (
	"encoding/json"
	"net/http"
	"time"

	"spendtrack/internal/assistant"
	applog "spendtrack/internal/log"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	message := sanitizeInput(req.Message)
	if message == "" {
		writeFieldErrors(w, map[string]string{"message": "message is empty"})
		return
	}

	reply := s.chat.Respond(message, s.expenses.List())

	// Pace the reply for conversational feel, but never outlive the request.
	if s.replyDelay > 0 {
		select {
		case <-time.After(s.replyDelay):
		case <-r.Context().Done():
			return
		}
	}

	s.logger.Debug("chat reply", applog.FieldQueryText, message)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// handleChatOpen signals that the chat panel opened and returns the greeting.
func (s *Server) handleChatOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	if s.notifier != nil {
		s.notifier.NotifyOpen()
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: assistant.Greeting})
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jobwise/jobwise/internal/assistant"
	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/service"
)

// AssistantHandler exposes the two chat surfaces:
//
//   - HandleMessage     → the scripted keyword bot (offline, always works)
//   - HandleCompletions → passthrough to the chat-completion provider, using
//     an API key the caller supplies per request
type AssistantHandler struct {
	assistants *service.AssistantService
	logger     *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(assistants *service.AssistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistants: assistants,
		logger:     logger,
	}
}

// messageRequest is the body for POST /api/assistant/message.
type messageRequest struct {
	Message string `json:"message"`
}

// completionRequest is the body for POST /api/assistant/completions.
//
// The API key travels in the request body, not a server config: the server
// never stores provider credentials, it only forwards them. Each user brings
// their own key.
type completionRequest struct {
	Message string `json:"message"`
	APIKey  string `json:"apiKey"`
}

// messageResponse is the reply shape shared by both endpoints.
type messageResponse struct {
	Reply string `json:"reply"`
}

// HandleGreeting returns the assistant's opening message.
//
// HTTP: GET /api/assistant/greeting
//
// The client shows this before the user has typed anything. Serving it from
// the API (rather than hardcoding it client-side) keeps the script in one
// place.
func (h *AssistantHandler) HandleGreeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Reply: assistant.Greeting})
}

// HandleMessage runs the scripted bot.
//
// HTTP: POST /api/assistant/message
// BODY: {"message":"how do I improve my resume?"}
// Auth: required — the bot personalizes from the caller's stored skills.
func (h *AssistantHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("assistant message: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	reply, err := h.assistants.Reply(r.Context(), userID, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Reply: reply})
}

// HandleCompletions forwards the message to the chat-completion provider.
//
// HTTP: POST /api/assistant/completions
// BODY: {"message":"...", "apiKey":"..."}
// Auth: required
//
// Provider failures (bad key, upstream outage) surface as 502 with a stable
// message; the client shows its "assistant unavailable" state and the user
// can fall back to the scripted bot.
func (h *AssistantHandler) HandleCompletions(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("assistant completions: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	reply, err := h.assistants.ProxyComplete(r.Context(), req.APIKey, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Reply: reply})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gujjar-pranav/portfolio/internal/api"
	"github.com/gujjar-pranav/portfolio/internal/chat"
	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/telemetry"
)

type ChatHandler struct {
	store *chat.Store
}

func NewChatHandler(store *chat.Store) *ChatHandler {
	return &ChatHandler{store: store}
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type AskRequest struct {
	Text string `json:"text"`
}

type MessageResponse struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type SessionResponse struct {
	ID       string            `json:"id"`
	Messages []MessageResponse `json:"messages"`
}

type ReplyResponse struct {
	Reply string `json:"reply"`
}

type TopicsResponse struct {
	Topics []string `json:"topics"`
}

func messagesToResponse(messages []domain.ChatMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageResponse{
			Role:      string(m.Role),
			Text:      m.Text,
			CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return out
}

func sessionToResponse(s *chat.Session) *SessionResponse {
	return &SessionResponse{
		ID:       s.ID,
		Messages: messagesToResponse(s.Messages()),
	}
}

// CreateSession starts a new conversation seeded with the greeting.
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.store.Create()
	api.Success(w, http.StatusCreated, sessionToResponse(session))
}

// GetSession returns a session's full message history.
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.store.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		api.HandleError(w, domain.ErrSessionNotFound)
		return
	}
	api.Success(w, http.StatusOK, sessionToResponse(session))
}

// DeleteSession discards a session. Unknown IDs succeed; the outcome is
// the same either way.
func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

// SendMessage routes one user message within a session and returns the
// assistant reply.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, ok := h.store.Get(sessionID)
	if !ok {
		api.HandleError(w, domain.ErrSessionNotFound)
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, span := telemetry.StartSpan(r.Context(), "chat.send", telemetry.SpanAttributes{
		SessionID: sessionID,
		Operation: "send_message",
	})
	defer span.End()

	reply, err := session.Send(ctx, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			api.Error(w, http.StatusBadRequest, "message text is required")
		case errors.Is(err, chat.ErrStaleReply):
			// The session was reset mid-flight; the reply is already
			// discarded server-side.
			api.Error(w, http.StatusConflict, "session was reset")
		default:
			span.SetError(err)
			api.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	api.Success(w, http.StatusOK, ReplyResponse{Reply: reply})
}

// ResetSession clears a session back to its initial greeting.
func (h *ChatHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.store.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		api.HandleError(w, domain.ErrSessionNotFound)
		return
	}
	session.Reset()
	api.Success(w, http.StatusOK, sessionToResponse(session))
}

// Ask answers a one-shot query without creating a session.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, span := telemetry.StartSpan(r.Context(), "chat.ask", telemetry.SpanAttributes{
		Operation: "ask",
	})
	defer span.End()

	reply, err := h.store.Ask(ctx, req.Text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			api.Error(w, http.StatusBadRequest, "message text is required")
			return
		}
		span.SetError(err)
		api.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	api.Success(w, http.StatusOK, ReplyResponse{Reply: reply})
}

// Topics returns the example queries for the help panel.
func (h *ChatHandler) Topics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, http.StatusOK, TopicsResponse{Topics: chat.Topics()})
}

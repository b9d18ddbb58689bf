package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// ChatLogHandler serves what the local host adapter has recorded.
type ChatLogHandler struct {
	log ports.ChatLog
}

// NewChatLogHandler creates a ChatLogHandler.
func NewChatLogHandler(log ports.ChatLog) *ChatLogHandler {
	return &ChatLogHandler{log: log}
}

// ListMessages handles GET /api/v1/chat/messages.
func (h *ChatLogHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	msgs, err := h.log.ListMessages(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToChatMessageListResponse(msgs))
}

// ListNotifications handles GET /api/v1/notifications.
func (h *ChatLogHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ns, err := h.log.ListNotifications(r.Context(), r.URL.Query().Get("user"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNotificationListResponse(ns))
}

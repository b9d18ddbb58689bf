package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/app/hooks"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// Dispatcher runs the handlers registered for a host event.
// *hooks.Registry implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, msg chat.Message) (ports.HookOutcome, error)
}

// HookHandler receives host events and dispatches them to the hook registry.
type HookHandler struct {
	dispatcher Dispatcher
}

// NewHookHandler creates a HookHandler.
func NewHookHandler(dispatcher Dispatcher) *HookHandler {
	return &HookHandler{dispatcher: dispatcher}
}

// ChatMessage handles POST /api/v1/hooks/chat-message.
func (h *HookHandler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatMessageHookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.dispatcher.Dispatch(r.Context(), hooks.EventChatMessage, req.ToMessage())
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "chat message hook failed",
			slog.String("user", req.User),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToHookResponse(out))
}

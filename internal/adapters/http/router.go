// Package http provides the inbound HTTP adapter: the hook endpoint the VTT
// host calls, the ORE roll API, routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/handlers"
)

// Handlers groups the route handlers. ChatLog is nil when chat messages go
// to a remote host, in which case its routes are not mounted.
type Handlers struct {
	Health  *handlers.HealthHandler
	Hooks   *handlers.HookHandler
	ORE     *handlers.OREHandler
	ChatLog *handlers.ChatLogHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Handle("/static/*", staticHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/hooks/chat-message", h.Hooks.ChatMessage)

		r.Route("/ore", func(r chi.Router) {
			r.Post("/rolls", h.ORE.Roll)
			r.Post("/rolls/batch", h.ORE.RollBatch)
			r.Post("/parse", h.ORE.Parse)
			r.Post("/render", h.ORE.Render)
		})

		if h.ChatLog != nil {
			r.Get("/chat/messages", h.ChatLog.ListMessages)
			r.Get("/notifications", h.ChatLog.ListNotifications)
		}
	})

	return r
}

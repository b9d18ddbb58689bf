// Package hooks is the chat event dispatch table. Handlers register once at
// startup; the inbound adapter dispatches each host event through it.
package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// EventChatMessage fires for every chat message a user submits.
const EventChatMessage = "chatMessage"

// Handler reacts to a chat event. Returning Propagate false consumes the
// message: later handlers and the host's default handling are skipped.
type Handler func(ctx context.Context, msg chat.Message) (ports.HookOutcome, error)

type entry struct {
	name string
	fn   Handler
}

// Registry is safe for concurrent use. Dispatch takes only a read lock.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string][]entry)}
}

// On registers fn for event under name. Handlers run in registration order.
func (r *Registry) On(event, name string, fn Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[event] = append(r.handlers[event], entry{name: name, fn: fn})
}

// Handlers lists the names registered for event.
func (r *Registry) Handlers(event string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers[event]))
	for _, e := range r.handlers[event] {
		names = append(names, e.name)
	}
	return names
}

// Dispatch runs the handlers for event until one consumes msg or fails.
// With no consuming handler the outcome is Propagate true.
func (r *Registry) Dispatch(ctx context.Context, event string, msg chat.Message) (ports.HookOutcome, error) {
	r.mu.RLock()
	chain := append([]entry(nil), r.handlers[event]...)
	r.mu.RUnlock()

	for _, e := range chain {
		out, err := e.fn(ctx, msg)
		if err != nil {
			return ports.HookOutcome{}, fmt.Errorf("hook %s/%s: %w", event, e.name, err)
		}
		if !out.Propagate {
			return out, nil
		}
	}
	return ports.HookOutcome{Propagate: true}, nil
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
)

// DiceRoller is the dice generator. Implemented by the local seeded roller
// and by the host ACL client (the VTT's own dice engine).
type DiceRoller interface {
	// Roll returns count independent uniform results in [1, faces], in
	// rolled order. count is always positive.
	Roll(ctx context.Context, count, faces int) ([]int, error)
}

// Presenter renders a roll into chat markup.
type Presenter interface {
	// Render executes the template named templateID over the roll's sets,
	// loose dice and flavor text. Returns domain.ErrNotFound for an unknown
	// template.
	Render(ctx context.Context, templateID string, result ore.RollResult) (string, error)
}

// ChatClient creates chat messages on the host.
type ChatClient interface {
	// CreateMessage posts msg and returns it with ID and CreatedAt set.
	CreateMessage(ctx context.Context, msg *chat.Message) (*chat.Message, error)
}

// Notifier surfaces a notification to a single user without touching the
// chat log.
type Notifier interface {
	Notify(ctx context.Context, n chat.Notification) error
}

// ChatLog reads back what the standalone host adapter has stored, newest
// first. A non-positive limit selects the adapter's default.
type ChatLog interface {
	ListMessages(ctx context.Context, limit int) ([]chat.Message, error)
	// ListNotifications returns notifications for user, or for everyone
	// when user is empty.
	ListNotifications(ctx context.Context, user string, limit int) ([]chat.Notification, error)
}

package ports

//go:generate go tool mockery --config ../../.mockery.yaml

import (
	"context"

	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
)

// RollService defines the service port for ORE rolls.
// Implemented by the application layer; called by the chat hook, the HTTP
// handlers and the CLI.
type RollService interface {
	// HandleChatMessage is the chatMessage hook handler. Messages that are
	// not /ore commands are left alone (Propagate true). A valid command is
	// rolled, rendered and posted; a malformed one triggers an error
	// notification to msg.User and nothing is rolled or posted. Both cases
	// stop propagation.
	HandleChatMessage(ctx context.Context, msg chat.Message) (HookOutcome, error)

	// CreateRawRoll rolls count ten-sided dice through the dice generator.
	// Returns domain.ErrValidation if count is not in [1, max dice].
	CreateRawRoll(ctx context.Context, count int) ([]int, error)

	// ParseRawRoll groups raw dice into sets and loose dice.
	ParseRawRoll(raw []int, flavorText *string) ore.RollResult

	// RenderContent renders the roll with the configured template.
	RenderContent(ctx context.Context, result ore.RollResult) (string, error)

	// Roll is CreateRawRoll, ParseRawRoll and RenderContent in one call.
	Roll(ctx context.Context, req RollRequest) (*RolledContent, error)

	// RollBatch performs independent rolls concurrently with partial
	// success semantics. Results keep the order of reqs. An empty batch or
	// one over the configured limit is rejected with domain.ErrValidation.
	RollBatch(ctx context.Context, reqs []RollRequest) (*BatchRollResult, error)
}

// HookOutcome reports what the chat hook did with a message.
// Message is non-nil only when a roll was posted.
type HookOutcome struct {
	Propagate bool
	Message   *chat.Message
}

// RollRequest asks for one ORE roll.
type RollRequest struct {
	DiceCount  int
	FlavorText *string
}

// RolledContent is a roll and its rendered markup.
type RolledContent struct {
	Result  ore.RollResult
	Content string
}

// BatchRollItem is the outcome of one roll in a batch; exactly one of
// Rolled and Err is set.
type BatchRollItem struct {
	Index  int
	Rolled *RolledContent
	Err    error
}

// BatchRollResult holds the outcomes of a batch in request order.
type BatchRollResult struct {
	Items []BatchRollItem
}

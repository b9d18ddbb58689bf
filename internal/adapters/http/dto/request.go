package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

const msgRequired = "is required"

// ChatMessageHookRequest is the chatMessage event as delivered by the host.
type ChatMessageHookRequest struct {
	User    string `json:"user"`
	Speaker string `json:"speaker"`
	Content string `json:"content"`
}

// Validate checks that the sender is known. Empty content is allowed; it is
// simply not an ORE command.
func (r *ChatMessageHookRequest) Validate() error {
	if strings.TrimSpace(r.User) == "" {
		return &domain.ValidationError{Fields: map[string]string{"user": msgRequired}}
	}
	return nil
}

// ToMessage converts the event to a domain chat message.
func (r *ChatMessageHookRequest) ToMessage() chat.Message {
	return chat.Message{User: r.User, Speaker: r.Speaker, Content: r.Content}
}

// RollRequest is the JSON body of POST /api/v1/ore/rolls and one entry of
// a batch.
type RollRequest struct {
	DiceCount  int     `json:"dice_count"`
	FlavorText *string `json:"flavor_text,omitempty"`
}

// Validate checks the lower bound of the pool; the upper bound is a
// service setting.
func (r *RollRequest) Validate() error {
	if r.DiceCount < 1 {
		return &domain.ValidationError{Fields: map[string]string{
			"dice_count": fmt.Sprintf("must be positive, got %d", r.DiceCount),
		}}
	}
	return nil
}

// ToPort converts the request to the service port type.
func (r *RollRequest) ToPort() ports.RollRequest {
	return ports.RollRequest{DiceCount: r.DiceCount, FlavorText: trimFlavor(r.FlavorText)}
}

// BatchRollRequest is the JSON body of POST /api/v1/ore/rolls/batch.
// Individual entries are not validated here; each one fails on its own.
type BatchRollRequest struct {
	Rolls []RollRequest `json:"rolls"`
}

// Validate checks that the batch is not empty.
func (r *BatchRollRequest) Validate() error {
	if len(r.Rolls) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"rolls": "must not be empty"}}
	}
	return nil
}

// ToPort converts the batch to service requests, in order.
func (r *BatchRollRequest) ToPort() []ports.RollRequest {
	reqs := make([]ports.RollRequest, len(r.Rolls))
	for i := range r.Rolls {
		reqs[i] = r.Rolls[i].ToPort()
	}
	return reqs
}

// ParseRequest is the JSON body of POST /api/v1/ore/parse.
type ParseRequest struct {
	RawRolls   []int   `json:"raw_rolls"`
	FlavorText *string `json:"flavor_text,omitempty"`
}

// Validate checks every die is a d10 face.
func (r *ParseRequest) Validate() error {
	fields := make(map[string]string)

	if r.RawRolls == nil {
		fields["raw_rolls"] = msgRequired
	}
	for i, v := range r.RawRolls {
		if v < 1 || v > ore.Faces {
			fields[fmt.Sprintf("raw_rolls[%d]", i)] = fmt.Sprintf("must be 1-%d, got %d", ore.Faces, v)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Flavor returns the trimmed flavor text, nil when blank.
func (r *ParseRequest) Flavor() *string {
	return trimFlavor(r.FlavorText)
}

// RenderRequest is the JSON body of POST /api/v1/ore/render. An empty
// Template selects the configured default.
type RenderRequest struct {
	ParseRequest
	Template string `json:"template,omitempty"`
}

func trimFlavor(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// DiceSetResponse is one matched set.
type DiceSetResponse struct {
	Width      int   `json:"width"`
	Height     int   `json:"height"`
	RollsInSet []int `json:"rolls_in_set"`
}

// RollResultResponse is the decomposition of a roll.
type RollResultResponse struct {
	RawRolls   []int             `json:"raw_rolls"`
	FlavorText *string           `json:"flavor_text"`
	Sets       []DiceSetResponse `json:"sets"`
	LooseDice  []int             `json:"loose_dice"`
}

// ToRollResultResponse converts a domain roll result.
func ToRollResultResponse(r ore.RollResult) RollResultResponse {
	sets := make([]DiceSetResponse, len(r.Sets))
	for i, s := range r.Sets {
		sets[i] = DiceSetResponse{Width: s.Width, Height: s.Height, RollsInSet: s.RollsInSet}
	}
	return RollResultResponse{
		RawRolls:   nonNil(r.RawRolls),
		FlavorText: r.FlavorText,
		Sets:       sets,
		LooseDice:  nonNil(r.LooseDice),
	}
}

// RollResponse is a roll with its rendered chat markup.
type RollResponse struct {
	Result  RollResultResponse `json:"result"`
	Content string             `json:"content"`
}

// ToRollResponse converts a rolled content port value.
func ToRollResponse(rc *ports.RolledContent) RollResponse {
	return RollResponse{Result: ToRollResultResponse(rc.Result), Content: rc.Content}
}

// BatchRollResponse reports every roll of a batch in request order.
type BatchRollResponse struct {
	Items     []BatchRollItemResponse `json:"items"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// BatchRollItemResponse is one entry of a batch; exactly one of Roll and
// Error is set.
type BatchRollItemResponse struct {
	Index int           `json:"index"`
	Roll  *RollResponse `json:"roll,omitempty"`
	Error string        `json:"error,omitempty"`
}

// ToBatchRollResponse converts a ports.BatchRollResult.
func ToBatchRollResponse(result *ports.BatchRollResult) BatchRollResponse {
	resp := BatchRollResponse{
		Items: make([]BatchRollItemResponse, len(result.Items)),
		Total: len(result.Items),
	}
	for i, item := range result.Items {
		out := BatchRollItemResponse{Index: item.Index}
		if item.Err != nil {
			out.Error = item.Err.Error()
			resp.Failed++
		} else {
			roll := ToRollResponse(item.Rolled)
			out.Roll = &roll
			resp.Succeeded++
		}
		resp.Items[i] = out
	}
	return resp
}

// RenderResponse is the markup rendered for a roll.
type RenderResponse struct {
	Template string `json:"template"`
	Content  string `json:"content"`
}

// ChatMessageResponse is a chat message in HTTP responses.
type ChatMessageResponse struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Speaker   string `json:"speaker,omitempty"`
	Content   string `json:"content"`
	Flavor    string `json:"flavor,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToChatMessageResponse converts a domain message.
func ToChatMessageResponse(m *chat.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		User:      m.User,
		Speaker:   m.Speaker,
		Content:   m.Content,
		Flavor:    m.Flavor,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

// ChatMessageListResponse is a page of the chat log.
type ChatMessageListResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
	Count    int                   `json:"count"`
}

// ToChatMessageListResponse converts a slice of domain messages.
func ToChatMessageListResponse(msgs []chat.Message) ChatMessageListResponse {
	items := make([]ChatMessageResponse, len(msgs))
	for i := range msgs {
		items[i] = ToChatMessageResponse(&msgs[i])
	}
	return ChatMessageListResponse{Messages: items, Count: len(items)}
}

// NotificationResponse is a delivered notification.
type NotificationResponse struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	User      string `json:"user"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// NotificationListResponse is a page of notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

// ToNotificationListResponse converts a slice of domain notifications.
func ToNotificationListResponse(ns []chat.Notification) NotificationListResponse {
	items := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		items[i] = NotificationResponse{
			ID:        n.ID,
			Level:     n.Level.String(),
			User:      n.User,
			Text:      n.Text,
			CreatedAt: formatTime(n.CreatedAt),
		}
	}
	return NotificationListResponse{Notifications: items, Count: len(items)}
}

// HookResponse tells the host whether to keep processing the message.
type HookResponse struct {
	Propagate bool                 `json:"propagate"`
	Message   *ChatMessageResponse `json:"message"`
}

// ToHookResponse converts a hook outcome.
func ToHookResponse(out ports.HookOutcome) HookResponse {
	resp := HookResponse{Propagate: out.Propagate}
	if out.Message != nil {
		m := ToChatMessageResponse(out.Message)
		resp.Message = &m
	}
	return resp
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the health endpoints. Checks maps each
// dependency to "ok" or its failure message; liveness omits it.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes health check results. No checks at all
// counts as ready.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}

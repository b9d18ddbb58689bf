package host

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/platform/httpclient"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

var (
	_ ports.DiceRoller    = (*Client)(nil)
	_ ports.ChatClient    = (*Client)(nil)
	_ ports.Notifier      = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Host API paths.
const (
	PathDiceRoll      = "/api/v1/dice/roll"
	PathChatMessages  = "/api/v1/chat/messages"
	PathNotifications = "/api/v1/notifications"
)

// Client talks to the VTT host through a resilient httpclient.Client.
type Client struct {
	http *httpclient.Client
	req  *Requester
}

// NewClient wraps hc, whose base URL must point at the host root.
func NewClient(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: hc, req: NewRequester(hc, logger)}
}

// Roll asks the host's dice engine for count dice of faces sides.
func (c *Client) Roll(ctx context.Context, count, faces int) ([]int, error) {
	var dto RollResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, PathDiceRoll, http.StatusOK,
		RollRequestDTO{Formula: Formula(count, faces)}, &dto); err != nil {
		return nil, err
	}
	return ToRawRoll(dto, count, faces)
}

// CreateMessage posts msg to the host chat log.
func (c *Client) CreateMessage(ctx context.Context, msg *chat.Message) (*chat.Message, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	var dto ChatMessageDTO
	if err := c.req.Do(ctx, http.MethodPost, PathChatMessages, http.StatusCreated,
		ToChatMessageDTO(msg), &dto); err != nil {
		return nil, err
	}
	return ToDomainMessage(dto), nil
}

// Notify shows n to its user through the host's notification UI.
func (c *Client) Notify(ctx context.Context, n chat.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	return c.req.Do(ctx, http.MethodPost, PathNotifications, http.StatusAccepted, ToNotificationDTO(n), nil)
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the breaker state without calling the host.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

// CircuitBreakerState reports "closed", "half-open" or "open".
func (c *Client) CircuitBreakerState() string {
	return c.req.CircuitBreakerState()
}

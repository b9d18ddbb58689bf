// Package chat holds the host chat entities the ORE handler reads and writes.
package chat

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
)

const msgRequired = "is required"

// Message is a chat message as seen by the host. Inbound hook events carry
// User, Speaker and Content; ID and CreatedAt are assigned on creation.
type Message struct {
	ID        string
	User      string
	Speaker   string
	Content   string
	Flavor    string
	CreatedAt time.Time
}

// Validate checks the fields required to create a message.
func (m *Message) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.User) == "" {
		fields["user"] = msgRequired
	}
	if strings.TrimSpace(m.Content) == "" {
		fields["content"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Level is the severity of a user notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warning"
	LevelError Level = "error"
)

// IsValid returns true if the level is one of the defined constants.
func (l Level) IsValid() bool {
	switch l {
	case LevelInfo, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// Notification is a transient message shown to a single user, outside the
// chat log.
type Notification struct {
	ID        string
	Level     Level
	User      string
	Text      string
	CreatedAt time.Time
}

// Validate checks the fields required to deliver a notification.
func (n *Notification) Validate() error {
	fields := make(map[string]string)

	if !n.Level.IsValid() {
		fields["level"] = "must be one of: info, warning, error"
	}
	if strings.TrimSpace(n.Text) == "" {
		fields["text"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

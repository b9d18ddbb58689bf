package host

import (
	"fmt"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
)

// Formula renders a pool as host dice notation, e.g. "6d10".
func Formula(count, faces int) string {
	return fmt.Sprintf("%dd%d", count, faces)
}

// ToRawRoll extracts the first term's active dice. The host must return
// exactly count dice of the requested faces.
func ToRawRoll(dto RollResponseDTO, count, faces int) ([]int, error) {
	if len(dto.Terms) == 0 {
		return nil, fmt.Errorf("host roll %q has no dice terms: %w", dto.Formula, domain.ErrUnavailable)
	}
	term := dto.Terms[0]
	if term.Faces != 0 && term.Faces != faces {
		return nil, fmt.Errorf("host rolled d%d, want d%d: %w", term.Faces, faces, domain.ErrUnavailable)
	}

	out := make([]int, 0, len(term.Results))
	for _, r := range term.Results {
		if r.Active != nil && !*r.Active {
			continue
		}
		if r.Result < 1 || r.Result > faces {
			return nil, fmt.Errorf("host die result %d outside [1,%d]: %w", r.Result, faces, domain.ErrUnavailable)
		}
		out = append(out, r.Result)
	}

	if len(out) != count {
		return nil, fmt.Errorf("host rolled %d dice, want %d: %w", len(out), count, domain.ErrUnavailable)
	}
	return out, nil
}

// ToChatMessageDTO converts a domain message for creation.
func ToChatMessageDTO(m *chat.Message) ChatMessageDTO {
	return ChatMessageDTO{
		User:    m.User,
		Speaker: SpeakerDTO{Alias: m.Speaker},
		Content: m.Content,
		Flavor:  m.Flavor,
	}
}

// ToDomainMessage converts the host's message.
func ToDomainMessage(dto ChatMessageDTO) *chat.Message {
	return &chat.Message{
		ID:        dto.ID,
		User:      dto.User,
		Speaker:   dto.Speaker.Alias,
		Content:   dto.Content,
		Flavor:    dto.Flavor,
		CreatedAt: millis(dto.Timestamp),
	}
}

// ToNotificationDTO converts a domain notification.
func ToNotificationDTO(n chat.Notification) NotificationDTO {
	return NotificationDTO{Level: string(n.Level), User: n.User, Message: n.Text}
}

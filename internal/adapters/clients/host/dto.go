package host

import "time"

// RollRequestDTO is the body of POST /api/v1/dice/roll.
type RollRequestDTO struct {
	Formula string `json:"formula"`
}

// RollResponseDTO is the host's evaluated roll.
type RollResponseDTO struct {
	Formula string        `json:"formula"`
	Total   int           `json:"total,omitempty"`
	Terms   []DiceTermDTO `json:"terms"`
}

// DiceTermDTO is one dice term of a formula, e.g. the 6d10 in "6d10+2".
type DiceTermDTO struct {
	Number  int            `json:"number"`
	Faces   int            `json:"faces"`
	Results []DieResultDTO `json:"results"`
}

// DieResultDTO is a single die. Discarded dice (rerolled or dropped by
// formula modifiers) carry Active false.
type DieResultDTO struct {
	Result int   `json:"result"`
	Active *bool `json:"active,omitempty"`
}

// ChatMessageDTO is the host's chat message resource.
type ChatMessageDTO struct {
	ID        string     `json:"_id,omitempty"`
	User      string     `json:"user"`
	Speaker   SpeakerDTO `json:"speaker"`
	Content   string     `json:"content"`
	Flavor    string     `json:"flavor,omitempty"`
	Timestamp int64      `json:"timestamp,omitempty"`
}

// SpeakerDTO names who a message is spoken as.
type SpeakerDTO struct {
	Alias string `json:"alias,omitempty"`
}

// NotificationDTO is the body of POST /api/v1/notifications.
type NotificationDTO struct {
	Level   string `json:"level"`
	User    string `json:"user,omitempty"`
	Message string `json:"message"`
}

// millis converts a host timestamp (Unix milliseconds).
func millis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

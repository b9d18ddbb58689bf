// Package command parses the /ore chat command:
//
//	/ore <count>[d10][ # <flavor text>]
//
// for example "/ore 6d10 # Flaming sword attack".
package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
)

// Prefix is the chat command word.
const Prefix = "/ore"

var (
	commandPattern = regexp.MustCompile(`(?s)^/ore\s+(.*?)(?:\s*#\s*(.*))?$`)
	countPattern   = regexp.MustCompile(`^([0-9]+)(?:[dD]10)?$`)
)

// Command is a parsed /ore invocation.
type Command struct {
	Raw        string
	DiceCount  int
	FlavorText *string
}

// IsORE reports whether text invokes the /ore command. Only the exact
// command word counts, so "/oregano" is left to the host.
func IsORE(text string) bool {
	rest, ok := strings.CutPrefix(text, Prefix)
	if !ok {
		return false
	}
	return rest == "" || isSpace(rest[0])
}

// Parse parses text into a Command. maxDice caps the dice count; zero or
// less means no cap. Every failure is a *domain.CommandParseError.
func Parse(text string, maxDice int) (Command, error) {
	m := commandPattern.FindStringSubmatch(text)
	if m == nil {
		return Command{}, parseError(text, "expected /ore <count>[d10][#flavor]")
	}

	token := strings.TrimSpace(m[1])
	if token == "" {
		return Command{}, parseError(text, "missing dice count")
	}

	cm := countPattern.FindStringSubmatch(token)
	if cm == nil {
		return Command{}, parseError(text, "invalid dice count "+strconv.Quote(token))
	}

	count, err := strconv.Atoi(cm[1])
	if err != nil {
		return Command{}, parseError(text, "dice count out of range")
	}
	if count < 1 {
		return Command{}, parseError(text, "dice count must be positive")
	}
	if maxDice > 0 && count > maxDice {
		return Command{}, parseError(text, "dice count exceeds "+strconv.Itoa(maxDice))
	}

	cmd := Command{Raw: text, DiceCount: count}
	if flavor := strings.TrimSpace(m[2]); flavor != "" {
		cmd.FlavorText = &flavor
	}
	return cmd, nil
}

func parseError(text, reason string) error {
	return &domain.CommandParseError{Text: text, Reason: reason}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

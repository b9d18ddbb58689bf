package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("unavailable")
	ErrCommandParse = errors.New("command parse error")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// CommandParseError reports chat command text that does not match the
// /ore grammar. Text is the original command as typed by the user.
type CommandParseError struct {
	Text   string
	Reason string
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrCommandParse.Error(), e.Reason, e.Text)
}

func (e *CommandParseError) Unwrap() error {
	return ErrCommandParse
}

// UserMessage is the notification text shown to the user who typed the
// failing command.
func (e *CommandParseError) UserMessage() string {
	return "Failed parsing ORE command: \n" + e.Text
}

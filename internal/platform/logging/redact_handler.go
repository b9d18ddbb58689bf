package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach a
// log line. The HTTP middleware redacts the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":   true,
	"cookie":          true,
	"set-cookie":      true,
	"x-api-key":       true,
	"x-session-token": true,
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three dot-separated segments of ten or more characters, so version
	// strings and dice formulas do not match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey|session[_\-]?token)\s*[:=]\s*\S+`)
)

var sensitiveFields = []string{"password", "secret", "token", "session"}

var sensitivePrefixes = []string{"secret_", "api_key", "session_"}

// newRedactAttr builds the masq ReplaceAttr hook used by every handler New
// creates.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+3)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineKeyPattern),
	)

	return masq.New(opts...)
}

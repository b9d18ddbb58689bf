package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "TEXT", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("rolled")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		logAt   slog.Level
		visible bool
	}{
		{level: "debug", logAt: slog.LevelDebug, visible: true},
		{level: "DEBUG", logAt: slog.LevelDebug, visible: true},
		{level: "info", logAt: slog.LevelDebug, visible: false},
		{level: "warning", logAt: slog.LevelInfo, visible: false},
		{level: "error", logAt: slog.LevelWarn, visible: false},
		{level: "verbose", logAt: slog.LevelInfo, visible: true},
		{level: "verbose", logAt: slog.LevelDebug, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.logAt.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.logAt, "msg")

			if got := buf.Len() > 0; got != tt.visible {
				t.Errorf("visible = %v, want %v (output %q)", got, tt.visible, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source", infoBuf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger is enabled at error level")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on bare context did not return slog.Default()")
	}

	first := logging.Discard()
	second := logging.Discard()
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization", attr: slog.String("authorization", "Bearer abc123"), secret: "abc123"},
		{name: "session token header", attr: slog.String("x-session-token", "s3ss10n"), secret: "s3ss10n"},
		{name: "password", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "prefix", attr: slog.String("session_id", "sid-42"), secret: "sid-42"},
		{name: "bearer value", attr: slog.String("raw", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline key", attr: slog.String("url", "api_key=topsecret"), secret: "topsecret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, contains %q", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED]", out)
			}
		})
	}
}

func TestNew_KeepsDomainFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("roll",
		slog.String("user", "gm"),
		slog.String("formula", "6d10"),
		slog.Int("dice_count", 6),
	)

	out := buf.String()
	for _, want := range []string{`"user":"gm"`, `"formula":"6d10"`, `"dice_count":6`} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %s", out, want)
		}
	}
}

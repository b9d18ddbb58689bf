// Package sqlite is the standalone stand-in for the VTT host's chat: it
// stores created chat messages and user notifications in a local SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/platform/storage/sqlitemigrate"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

var (
	_ ports.ChatClient    = (*Store)(nil)
	_ ports.Notifier      = (*Store)(nil)
	_ ports.ChatLog       = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// List limits.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Store is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	clean := filepath.Clean(path)
	if dir := filepath.Dir(clean); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	dsn := "file:" + clean + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "chat-log"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("chat-log: %w", err)
	}
	return nil
}

// CreateMessage stores msg under a new id and returns the stored copy.
func (s *Store) CreateMessage(ctx context.Context, msg *chat.Message) (*chat.Message, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	out := *msg
	out.ID = uuid.NewString()
	out.CreatedAt = s.now().UTC()

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, user_id, speaker, content, flavor, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		out.ID, out.User, out.Speaker, out.Content, out.Flavor, toMillis(out.CreatedAt),
	); err != nil {
		return nil, fmt.Errorf("insert chat message: %w", err)
	}
	return &out, nil
}

// Notify stores n.
func (s *Store) Notify(ctx context.Context, n chat.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO notifications (id, level, user_id, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, string(n.Level), n.User, n.Text, toMillis(n.CreatedAt),
	); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListMessages returns up to limit messages, newest first.
func (s *Store) ListMessages(ctx context.Context, limit int) ([]chat.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, speaker, content, flavor, created_at
		   FROM chat_messages
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ?`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	msgs := []chat.Message{}
	for rows.Next() {
		var (
			m  chat.Message
			ms int64
		)
		if err := rows.Scan(&m.ID, &m.User, &m.Speaker, &m.Content, &m.Flavor, &ms); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		m.CreatedAt = fromMillis(ms)
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}
	return msgs, nil
}

// ListNotifications returns up to limit notifications for user (all users
// when empty), newest first.
func (s *Store) ListNotifications(ctx context.Context, user string, limit int) ([]chat.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level, user_id, text, created_at
		   FROM notifications
		  WHERE ? = '' OR user_id = ?
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ?`,
		user, user, clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []chat.Notification{}
	for rows.Next() {
		var (
			n     chat.Notification
			level string
			ms    int64
		)
		if err := rows.Scan(&n.ID, &level, &n.User, &n.Text, &ms); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Level = chat.Level(level)
		n.CreatedAt = fromMillis(ms)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Package app holds the application services. They coordinate the ORE
// domain with the dice, presenter and chat ports and carry no transport
// concerns.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/ore-roller/internal/app/fanout"
	"github.com/jsamuelsen11/ore-roller/internal/app/hooks"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/chat"
	"github.com/jsamuelsen11/ore-roller/internal/domain/command"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

var _ ports.RollService = (*RollService)(nil)

// Roll origins reported to the Recorder.
const (
	OriginHook  = "hook"
	OriginAPI   = "api"
	OriginBatch = "batch"
)

// Recorder receives roll statistics. *telemetry.Metrics implements it.
type Recorder interface {
	RecordRoll(ctx context.Context, origin string, dice int, setWidths []int)
	RecordParseError(ctx context.Context)
}

type noopRecorder struct{}

func (noopRecorder) RecordRoll(context.Context, string, int, []int) {}
func (noopRecorder) RecordParseError(context.Context)               {}

// RollSettings are the tunables of the roll service.
type RollSettings struct {
	MaxDice      int
	Template     string
	BatchWorkers int
	BatchLimit   int
}

// RollService implements ports.RollService.
type RollService struct {
	roller    ports.DiceRoller
	presenter ports.Presenter
	chat      ports.ChatClient
	notifier  ports.Notifier
	recorder  Recorder
	settings  RollSettings
	logger    *slog.Logger
}

// NewRollService wires the service. recorder and logger may be nil.
func NewRollService(
	roller ports.DiceRoller,
	presenter ports.Presenter,
	chatClient ports.ChatClient,
	notifier ports.Notifier,
	recorder Recorder,
	settings RollSettings,
	logger *slog.Logger,
) *RollService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RollService{
		roller:    roller,
		presenter: presenter,
		chat:      chatClient,
		notifier:  notifier,
		recorder:  recorder,
		settings:  settings,
		logger:    logger,
	}
}

// Register installs HandleChatMessage as the chatMessage hook.
func (s *RollService) Register(r *hooks.Registry) {
	r.On(hooks.EventChatMessage, "ore", s.HandleChatMessage)
}

// HandleChatMessage implements the chatMessage hook.
func (s *RollService) HandleChatMessage(ctx context.Context, msg chat.Message) (ports.HookOutcome, error) {
	if !command.IsORE(msg.Content) {
		return ports.HookOutcome{Propagate: true}, nil
	}

	s.logger.InfoContext(ctx, "handling ORE command", slog.String("user", msg.User))

	cmd, err := command.Parse(msg.Content, s.settings.MaxDice)
	if err != nil {
		return ports.HookOutcome{Propagate: false}, s.reportParseError(ctx, msg, err)
	}

	rolled, err := s.roll(ctx, OriginHook, ports.RollRequest{DiceCount: cmd.DiceCount, FlavorText: cmd.FlavorText})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to roll ORE command",
			slog.String("operation", "HandleChatMessage"),
			slog.String("user", msg.User),
			slog.Int("dice_count", cmd.DiceCount),
			slog.Any("error", err),
		)
		return ports.HookOutcome{Propagate: false}, err
	}

	created, err := s.chat.CreateMessage(ctx, &chat.Message{
		User:    msg.User,
		Speaker: msg.Speaker,
		Content: rolled.Content,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to post ORE roll",
			slog.String("operation", "HandleChatMessage"),
			slog.String("user", msg.User),
			slog.Any("error", err),
		)
		return ports.HookOutcome{Propagate: false}, fmt.Errorf("posting roll: %w", err)
	}

	return ports.HookOutcome{Propagate: false, Message: created}, nil
}

// reportParseError notifies the sender. Only a failed notification is
// returned as an error; the rejected command itself is a handled outcome.
func (s *RollService) reportParseError(ctx context.Context, msg chat.Message, err error) error {
	s.recorder.RecordParseError(ctx)

	text := (&domain.CommandParseError{Text: msg.Content}).UserMessage()
	var perr *domain.CommandParseError
	if errors.As(err, &perr) {
		text = perr.UserMessage()
	}

	s.logger.InfoContext(ctx, "rejected ORE command",
		slog.String("user", msg.User),
		slog.Any("error", err),
	)

	if nerr := s.notifier.Notify(ctx, chat.Notification{
		Level: chat.LevelError,
		User:  msg.User,
		Text:  text,
	}); nerr != nil {
		s.logger.ErrorContext(ctx, "failed to notify user",
			slog.String("operation", "HandleChatMessage"),
			slog.String("user", msg.User),
			slog.Any("error", nerr),
		)
		return fmt.Errorf("notifying parse error: %w", nerr)
	}
	return nil
}

// CreateRawRoll rolls count d10s.
func (s *RollService) CreateRawRoll(ctx context.Context, count int) ([]int, error) {
	if count < 1 || count > s.settings.MaxDice {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"dice_count": fmt.Sprintf("must be between 1 and %d", s.settings.MaxDice),
		}}
	}

	raw, err := s.roller.Roll(ctx, count, ore.Faces)
	if err != nil {
		return nil, fmt.Errorf("rolling %dd%d: %w", count, ore.Faces, err)
	}
	return raw, nil
}

// ParseRawRoll groups raw into sets and loose dice.
func (s *RollService) ParseRawRoll(raw []int, flavorText *string) ore.RollResult {
	return ore.ParseRawRoll(raw, flavorText)
}

// RenderContent renders result with the configured template.
func (s *RollService) RenderContent(ctx context.Context, result ore.RollResult) (string, error) {
	content, err := s.presenter.Render(ctx, s.settings.Template, result)
	if err != nil {
		return "", fmt.Errorf("rendering roll: %w", err)
	}
	return content, nil
}

// Roll rolls, parses and renders one request.
func (s *RollService) Roll(ctx context.Context, req ports.RollRequest) (*ports.RolledContent, error) {
	s.logger.InfoContext(ctx, "rolling ORE pool", slog.Int("dice_count", req.DiceCount))

	rolled, err := s.roll(ctx, OriginAPI, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to roll",
			slog.String("operation", "Roll"),
			slog.Int("dice_count", req.DiceCount),
			slog.Any("error", err),
		)
		return nil, err
	}
	return rolled, nil
}

// RollBatch rolls every request on the worker pool.
func (s *RollService) RollBatch(ctx context.Context, reqs []ports.RollRequest) (*ports.BatchRollResult, error) {
	if len(reqs) == 0 || len(reqs) > s.settings.BatchLimit {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"rolls": fmt.Sprintf("must contain between 1 and %d rolls", s.settings.BatchLimit),
		}}
	}

	s.logger.InfoContext(ctx, "rolling ORE batch", slog.Int("rolls", len(reqs)))

	results := fanout.Run(ctx, s.settings.BatchWorkers, reqs,
		func(ctx context.Context, req ports.RollRequest) (*ports.RolledContent, error) {
			return s.roll(ctx, OriginBatch, req)
		})

	out := &ports.BatchRollResult{Items: make([]ports.BatchRollItem, len(results))}
	for i, r := range results {
		out.Items[i] = ports.BatchRollItem{Index: i, Rolled: r.Value, Err: r.Err}
		if r.Err != nil {
			s.logger.WarnContext(ctx, "batch roll item failed",
				slog.String("operation", "RollBatch"),
				slog.Int("index", i),
				slog.Any("error", r.Err),
			)
		}
	}
	return out, nil
}

func (s *RollService) roll(ctx context.Context, origin string, req ports.RollRequest) (*ports.RolledContent, error) {
	raw, err := s.CreateRawRoll(ctx, req.DiceCount)
	if err != nil {
		return nil, err
	}

	result := s.ParseRawRoll(raw, req.FlavorText)

	content, err := s.RenderContent(ctx, result)
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(result.Sets))
	for i, set := range result.Sets {
		widths[i] = set.Width
	}
	s.recorder.RecordRoll(ctx, origin, len(raw), widths)

	return &ports.RolledContent{Result: result, Content: content}, nil
}

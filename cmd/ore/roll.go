package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/dice"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/adapters/render"
	"github.com/jsamuelsen11/ore-roller/internal/app"
	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/command"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

type rollOptions struct {
	seed     uint64
	json     bool
	template string
	maxDice  int
}

func newRollCmd(root *rootOptions) *cobra.Command {
	opts := &rollOptions{}

	cmd := &cobra.Command{
		Use:   `roll "<count>[d10] [# flavor]"`,
		Short: "Roll an ORE pool and print the chat card",
		Example: `  ore roll "6d10 # Flaming sword attack"
  ore roll "/ore 4" --seed 42 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "roller seed; 0 picks a random one")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the roll and markup as JSON")
	cmd.Flags().StringVar(&opts.template, "template", "ore-roll", "template used to render the card")
	cmd.Flags().IntVar(&opts.maxDice, "max-dice", defaultMaxDice, "largest pool accepted")

	return cmd
}

func runRoll(cmd *cobra.Command, root *rootOptions, opts *rollOptions, text string) error {
	if opts.maxDice < 1 {
		return fmt.Errorf("--max-dice must be at least 1, got %d", opts.maxDice)
	}

	ctx := cmd.Context()
	logger := root.logger(cmd.ErrOrStderr())

	if !command.IsORE(text) {
		text = command.Prefix + " " + text
	}

	parsed, err := command.Parse(text, opts.maxDice)
	if err != nil {
		var perr *domain.CommandParseError
		if errors.As(err, &perr) {
			return errors.New(perr.UserMessage())
		}
		return err
	}

	roller, err := dice.New(opts.seed)
	if err != nil {
		return fmt.Errorf("creating dice roller: %w", err)
	}
	logger.DebugContext(ctx, "rolling", "seed", roller.Seed(), "dice_count", parsed.DiceCount)

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	if !renderer.Has(opts.template) {
		return fmt.Errorf("unknown template %q (have %s)", opts.template, strings.Join(renderer.Templates(), ", "))
	}

	// The CLI never posts to chat, so the service gets no chat client or
	// notifier; Roll only rolls, parses and renders.
	svc := app.NewRollService(roller, renderer, nil, nil, nil, app.RollSettings{
		MaxDice:  opts.maxDice,
		Template: opts.template,
	}, logger)

	rolled, err := svc.Roll(ctx, ports.RollRequest{DiceCount: parsed.DiceCount, FlavorText: parsed.FlavorText})
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(cmd.OutOrStdout(), dto.ToRollResponse(rolled))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rolled.Content)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

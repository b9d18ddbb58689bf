package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/ore-roller/internal/adapters/http/dto"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "parse <die> [die...]",
		Short:   "Group already-rolled d10 faces into sets and loose dice",
		Example: "  ore parse 2 10 5 6 5 5 3 1 1 8",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseFaces(args)
			if err != nil {
				return err
			}
			result := ore.ParseRawRoll(raw, nil)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), dto.ToRollResultResponse(result))
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decomposition as JSON")

	return cmd
}

func parseFaces(args []string) ([]int, error) {
	raw := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 || n > ore.Faces {
			return nil, fmt.Errorf("die %d: %q is not a d%d face", i+1, a, ore.Faces)
		}
		raw[i] = n
	}
	return raw, nil
}

func writeResult(w io.Writer, r ore.RollResult) error {
	var b strings.Builder
	if len(r.Sets) == 0 {
		b.WriteString("sets: none\n")
	} else {
		b.WriteString("sets:\n")
		for _, s := range r.Sets {
			fmt.Fprintf(&b, "  %dx%d\n", s.Width, s.Height)
		}
		if best, ok := r.WidestSet(); ok {
			fmt.Fprintf(&b, "widest: %dx%d\n", best.Width, best.Height)
		}
	}
	loose := make([]string, len(r.LooseDice))
	for i, d := range r.LooseDice {
		loose[i] = strconv.Itoa(d)
	}
	if len(loose) == 0 {
		b.WriteString("loose: none\n")
	} else {
		fmt.Fprintf(&b, "loose: %s\n", strings.Join(loose, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/eggdex/internal/catalog"
)

// InfoOutput is the info command payload.
type InfoOutput struct {
	Creature  catalog.Creature `json:"creature"`
	EggGroups []string         `json:"egg_groups"`
	EggMoves  []catalog.Move   `json:"egg_moves"`
}

// String renders the creature as a short card.
func (i InfoOutput) String() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "#%d %s\n", i.Creature.ID, i.Creature.Name)

	types := i.Creature.PrimaryType
	if i.Creature.SecondaryType != "" {
		types += "/" + i.Creature.SecondaryType
	}
	fmt.Fprintf(&buf, "Type: %s\n", types)

	groups := "None"
	if len(i.EggGroups) > 0 {
		groups = joinNames(i.EggGroups)
	}
	fmt.Fprintf(&buf, "Egg Groups: %s\n", groups)

	if len(i.EggMoves) == 0 {
		buf.WriteString("Egg Moves: None")
		return buf.String()
	}
	buf.WriteString("Egg Moves:")
	for _, m := range i.EggMoves {
		fmt.Fprintf(&buf, "\n  - %s", describeMove(m))
	}
	return buf.String()
}

// describeMove renders "Name (Type, Category[, power N][, accuracy N])".
func describeMove(m catalog.Move) string {
	parts := []string{m.Type, string(m.Category)}
	if m.Power != nil {
		parts = append(parts, fmt.Sprintf("power %d", *m.Power))
	}
	if m.Accuracy != nil {
		parts = append(parts, fmt.Sprintf("accuracy %d", *m.Accuracy))
	}
	return fmt.Sprintf("%s (%s)", m.Name, strings.Join(parts, ", "))
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show a creature's types, egg groups and egg moves",
		Long: `Show a creature's catalog entry: id, types, egg groups and the
moves it can pass on by breeding.

Exit codes:
  0 - Creature found
  1 - Creature not in the catalog
  2 - Command error

Examples:
  eggdex info Bulbasaur
  eggdex info charmander --format json`,
		Args:          argsError(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
}

func runInfo(opts *RootOptions, name string, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := NewOutputFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	store, resolver, err := openCatalog(cmd, opts, formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	creature, err := store.Creature(ctx, name)
	if errors.Is(err, catalog.ErrNotFound) {
		suggestions, sErr := suggestFor(cmd, opts, resolver, name)
		if sErr != nil {
			return queryFailed(formatter, "suggest", sErr)
		}
		message := didYouMean(name, suggestions)
		_ = formatter.Error(ErrCodeNotFound, message, map[string][]string{"suggestions": suggestions})
		return NewExitError(ExitFailure, message)
	}
	if err != nil {
		return queryFailed(formatter, "info", err)
	}

	out := InfoOutput{Creature: creature, EggMoves: []catalog.Move{}}

	if out.EggGroups, err = store.EggGroupsOf(ctx, creature.Name); err != nil {
		return queryFailed(formatter, "info", err)
	}

	moves, err := store.EggMovesOf(ctx, creature.Name)
	if err != nil {
		return queryFailed(formatter, "info", err)
	}
	for _, moveName := range moves {
		m, err := store.Move(ctx, moveName)
		if err != nil {
			return queryFailed(formatter, "info", err)
		}
		out.EggMoves = append(out.EggMoves, m)
	}

	return formatter.Success(out)
}

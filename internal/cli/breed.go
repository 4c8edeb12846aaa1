package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/eggdex/internal/breeding"
)

// BreedOutput is the breed command payload.
type BreedOutput struct {
	Result breeding.BreedingResult `json:"result"`

	// Suggestions maps each unknown parent name to close catalog names.
	Suggestions map[string][]string `json:"suggestions,omitempty"`

	order []string
}

// String renders the result followed by one hint line per unknown parent.
func (b BreedOutput) String() string {
	var buf strings.Builder
	buf.WriteString(b.Result.String())
	for _, name := range b.order {
		fmt.Fprintf(&buf, "\n%s", didYouMean(name, b.Suggestions[name]))
	}
	return buf.String()
}

// NewBreedCommand creates the breed command.
func NewBreedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "breed <mother> <other>",
		Short: "Check whether two creatures can breed",
		Long: `Check whether two creatures share an egg group and, if they do,
which egg moves the offspring inherits.

The donor of egg moves is the mother, unless the mother is Ditto, in
which case it is the other parent. Names are matched ignoring case.

Examples:
  eggdex breed Bulbasaur Charmander
  eggdex breed ditto squirtle --format json`,
		Args:          argsError(cobra.ExactArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreed(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runBreed(opts *RootOptions, mother, other string, cmd *cobra.Command) error {
	formatter := NewOutputFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	store, resolver, err := openCatalog(cmd, opts, formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := resolver.ResolveBreeding(cmd.Context(), mother, other)
	if err != nil {
		return queryFailed(formatter, "breed", err)
	}

	out := BreedOutput{Result: result}
	for _, side := range []breeding.SideSummary{result.Mother, result.Other} {
		if side.Found {
			continue
		}
		if _, seen := out.Suggestions[side.Name]; seen {
			continue
		}
		suggestions, err := suggestFor(cmd, opts, resolver, side.Name)
		if err != nil {
			return queryFailed(formatter, "suggest", err)
		}
		if out.Suggestions == nil {
			out.Suggestions = map[string][]string{}
		}
		out.Suggestions[side.Name] = suggestions
		out.order = append(out.order, side.Name)
	}

	formatter.VerboseLog("trace %s: breed %s x %s compatible=%t", formatter.TraceID, mother, other, result.Outcome.Compatible)
	return formatter.Success(out)
}

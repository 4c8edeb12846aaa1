package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/eggdex/internal/breeding"
)

// SearchOutput is the search command payload.
type SearchOutput struct {
	Result      breeding.SearchResult `json:"result"`
	Suggestions []string              `json:"suggestions,omitempty"`
}

func (s SearchOutput) String() string {
	if s.Result.Found {
		return s.Result.String()
	}
	return s.Result.String() + "\n" + didYouMean(s.Result.Name, s.Suggestions)
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "List every creature a creature can breed with",
		Long: `List every creature sharing at least one egg group with the named
creature, in catalog order. The creature itself is included when it has
an egg group.

Examples:
  eggdex search Caterpie
  eggdex search squirtle --format json`,
		Args:          argsError(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd)
		},
	}
}

func runSearch(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := NewOutputFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	store, resolver, err := openCatalog(cmd, opts, formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := resolver.Search(cmd.Context(), name)
	if err != nil {
		return queryFailed(formatter, "search", err)
	}

	out := SearchOutput{Result: result}
	if !result.Found {
		if out.Suggestions, err = suggestFor(cmd, opts, resolver, name); err != nil {
			return queryFailed(formatter, "suggest", err)
		}
	}

	return formatter.Success(out)
}

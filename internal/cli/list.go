package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// ListOutput is the list command payload.
type ListOutput struct {
	Creatures []string `json:"creatures"`
}

func (l ListOutput) String() string {
	return strings.Join(l.Creatures, "\n")
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every creature in the catalog",
		Long: `List every creature name in catalog order, one per line.

With --verbose, catalog row counts are written to stderr.`,
		Args:          argsError(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := NewOutputFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	store, _, err := openCatalog(cmd, opts, formatter)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.CreatureNames(ctx)
	if err != nil {
		return queryFailed(formatter, "list", err)
	}

	if opts.Verbose {
		stats, err := store.Stats(ctx)
		if err != nil {
			return queryFailed(formatter, "list", err)
		}
		formatter.VerboseLog("catalog %s (%s): %d creatures, %d egg groups, %d moves",
			store.ID(), store.Driver(), stats.Creatures, stats.EggGroups, stats.Moves)
	}

	return formatter.Success(ListOutput{Creatures: names})
}

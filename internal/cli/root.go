package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/eggdex/internal/catalog"
	"github.com/roach88/eggdex/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	Driver      string // "sqlite3" | "sqlite"
	MaxConns    int
	Suggestions int

	// Logger is installed by the root command before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidDrivers defines the allowed catalog drivers.
var ValidDrivers = []string{catalog.DriverCGO, catalog.DriverPureGo}

// NewRootCommand creates the root command for the eggdex CLI.
// Flag defaults come from cfg; flags given on the command line win.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eggdex",
		Short: "eggdex - creature breeding lookup",
		Long:  "Look up egg groups, egg moves and breeding compatibility in the creature catalog.",

		// main reports errors and maps them to exit codes.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(ValidDrivers, opts.Driver) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid driver %q: must be one of %v", opts.Driver, ValidDrivers))
			}
			if opts.MaxConns < 1 {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid max-conns %d: must be at least 1", opts.MaxConns))
			}

			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})
			opts.Logger = slog.New(handler)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", cfg.Driver, "catalog driver (sqlite3|sqlite)")
	cmd.PersistentFlags().IntVar(&opts.MaxConns, "max-conns", cfg.MaxConns, "catalog connection pool size")
	cmd.PersistentFlags().IntVar(&opts.Suggestions, "suggestions", cfg.Suggestions, "names suggested for unknown creatures (0 disables)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Add subcommands
	cmd.AddCommand(NewBreedCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// logger returns the installed logger, or one writing to stderr when a
// subcommand runs without the root command (tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// catalogOptions maps the global flags onto catalog.Options.
func (o *RootOptions) catalogOptions() catalog.Options {
	return catalog.Options{
		Driver:   o.Driver,
		MaxConns: o.MaxConns,
		Logger:   o.logger(),
	}
}

// argsError wraps a positional-args validator so a wrong argument count
// exits with ExitCommandError.
func argsError(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

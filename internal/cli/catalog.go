package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/eggdex/internal/breeding"
	"github.com/roach88/eggdex/internal/catalog"
)

// openCatalog builds a fresh catalog from the global flags and a resolver
// over it. The caller must Close the store.
//
// An init failure is reported through formatter and returned as an
// ExitCommandError.
func openCatalog(cmd *cobra.Command, opts *RootOptions, formatter *OutputFormatter) (*catalog.Store, *breeding.Resolver, error) {
	store, err := catalog.Open(cmd.Context(), opts.catalogOptions())
	if err != nil {
		var details map[string]string
		var initErr *catalog.InitError
		if errors.As(err, &initErr) {
			details = map[string]string{"stage": initErr.Stage, "cause": initErr.Err.Error()}
		}
		_ = formatter.Error(ErrCodeCatalogInit, "catalog init failed", details)
		return nil, nil, WrapExitError(ExitCommandError, "catalog init failed", err)
	}

	return store, breeding.New(store, opts.logger()), nil
}

// queryFailed reports a catalog read error.
func queryFailed(formatter *OutputFormatter, what string, err error) error {
	_ = formatter.Error(ErrCodeQueryFailed, fmt.Sprintf("%s failed", what), err.Error())
	return WrapExitError(ExitCommandError, what+" failed", err)
}

// suggestFor returns "did you mean" names for an unknown creature.
// It returns an empty slice when suggestions are disabled.
func suggestFor(cmd *cobra.Command, opts *RootOptions, r *breeding.Resolver, name string) ([]string, error) {
	if opts.Suggestions <= 0 {
		return []string{}, nil
	}
	return r.Suggest(cmd.Context(), name, opts.Suggestions)
}

// didYouMean renders suggestions as a single text line.
func didYouMean(name string, suggestions []string) string {
	if len(suggestions) == 0 {
		return fmt.Sprintf("%q is not in the catalog", name)
	}
	return fmt.Sprintf("%q is not in the catalog. Did you mean: %s?", name, joinNames(suggestions))
}

func joinNames(items []string) string {
	return strings.Join(items, ", ")
}

func isInitError(err error) bool {
	var initErr *catalog.InitError
	return errors.As(err, &initErr)
}

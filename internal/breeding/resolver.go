package breeding

import (
	"context"
	"log/slog"
)

// Catalog is the read side of the creature catalog the Resolver needs.
// *catalog.Store satisfies it.
type Catalog interface {
	CreatureExists(ctx context.Context, name string) (bool, error)
	EggGroupsOf(ctx context.Context, name string) ([]string, error)
	EggMovesOf(ctx context.Context, name string) ([]string, error)
	CompatibleWith(ctx context.Context, name string) ([]string, error)
	CreatureNames(ctx context.Context) ([]string, error)
}

// Resolver answers breeding questions against a Catalog.
// It keeps no state between calls and is safe for concurrent use when the
// Catalog is.
type Resolver struct {
	catalog Catalog
	logger  *slog.Logger
}

// New creates a Resolver over catalog. A nil logger uses slog.Default().
func New(catalog Catalog, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{catalog: catalog, logger: logger}
}

// Exists reports whether a creature with the given name is in the catalog.
func (r *Resolver) Exists(ctx context.Context, name string) (bool, error) {
	return r.catalog.CreatureExists(ctx, name)
}

// EggGroupsOf returns the creature's egg groups. It is empty both for a
// creature without groups and for an unknown creature; use Exists to tell
// them apart.
func (r *Resolver) EggGroupsOf(ctx context.Context, name string) ([]string, error) {
	return r.catalog.EggGroupsOf(ctx, name)
}

// EggMovesOf returns the moves the creature passes on by breeding.
func (r *Resolver) EggMovesOf(ctx context.Context, name string) ([]string, error) {
	return r.catalog.EggMovesOf(ctx, name)
}

// CompatibleWith returns every creature sharing an egg group with name,
// including the creature itself.
func (r *Resolver) CompatibleWith(ctx context.Context, name string) ([]string, error) {
	return r.catalog.CompatibleWith(ctx, name)
}

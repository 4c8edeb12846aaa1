package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Supported database/sql driver names.
const (
	DriverCGO    = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPureGo = "sqlite"  // modernc.org/sqlite
)

// DefaultMaxConns is the pool size used when Options.MaxConns is zero.
const DefaultMaxConns = 4

// Options configures Open. The zero value is valid.
type Options struct {
	// Driver selects the SQLite driver: DriverCGO (default) or DriverPureGo.
	Driver string

	// MaxConns bounds the connection pool. All connections share one
	// in-memory database; at least one is always kept idle.
	MaxConns int

	// Logger receives initialization diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// seed overrides the embedded seed document. Tests only.
	seed []byte
}

// Store is the read-only creature catalog.
// It owns an in-memory SQLite database that lives until Close.
type Store struct {
	db     *sql.DB
	id     string
	driver string
}

// Open builds a fresh catalog: a uniquely named in-memory database with
// foreign keys enforced, the schema applied and the seed inserted in a
// single transaction.
//
// Any failure is returned as *InitError and leaves nothing behind.
func Open(ctx context.Context, opts Options) (*Store, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverCGO
	}
	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := opts.seed
	if seed == nil {
		seed = seedCUE
	}

	id := uuid.Must(uuid.NewV7()).String()
	dsn, err := memoryDSN(driver, id)
	if err != nil {
		return nil, &InitError{Stage: StageOpen, Err: err}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &InitError{Stage: StageOpen, Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// Connections never expire: the database disappears with the last one.
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &InitError{Stage: StageOpen, Err: fmt.Errorf("failed to connect to database: %w", err)}
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, &InitError{Stage: StageSchema, Err: fmt.Errorf("failed to apply schema: %w", err)}
	}

	doc, err := decodeSeed(seed)
	if err != nil {
		db.Close()
		return nil, &InitError{Stage: StageSeed, Err: err}
	}
	if err := insertSeed(ctx, db, doc); err != nil {
		db.Close()
		return nil, &InitError{Stage: StageSeed, Err: err}
	}

	s := &Store{db: db, id: id, driver: driver}

	stats, err := s.Stats(ctx)
	if err != nil {
		db.Close()
		return nil, &InitError{Stage: StageSeed, Err: err}
	}
	logger.Debug("catalog opened",
		"id", id,
		"driver", driver,
		"creatures", stats.Creatures,
		"egg_groups", stats.EggGroups,
		"moves", stats.Moves,
	)

	return s, nil
}

// Close releases the database. The catalog is gone afterwards.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB.
// The catalog is read-only by contract; callers must not write through it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ID returns the unique name of this store's in-memory database.
func (s *Store) ID() string {
	return s.id
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

// memoryDSN returns a shared-cache in-memory DSN with foreign keys enabled
// on every connection. Each driver spells the pragma differently.
func memoryDSN(driver, id string) (string, error) {
	base := "file:eggdex-" + id + "?mode=memory&cache=shared"
	switch driver {
	case DriverCGO:
		return base + "&_foreign_keys=1", nil
	case DriverPureGo:
		return base + "&_pragma=foreign_keys(1)", nil
	default:
		return "", fmt.Errorf("unsupported driver %q: must be %q or %q", driver, DriverCGO, DriverPureGo)
	}
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(ctx context.Context, name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRowContext(ctx, query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}

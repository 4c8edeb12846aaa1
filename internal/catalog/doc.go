// Package catalog provides the in-memory SQLite creature catalog.
//
// The catalog holds five tables:
//   - creature: species with a unique case-insensitive name and one or two types
//   - egg_group: the breeding groups (Monster, Grass, Bug, Normal, Psychic)
//   - creature_egg_group: creature <-> egg group membership
//   - move: moves with type, category, power and accuracy
//   - creature_move: creature <-> move with a learn method ("egg" for egg moves)
//
// Association rows cascade on delete and update of either parent.
//
// # Lifecycle
//
// Open builds everything from scratch: a fresh uniquely named in-memory
// database, the embedded schema.sql and the embedded seed.cue, inserted in
// one transaction. Nothing is persisted and nothing is written after Open
// returns. A failure at any step is an *InitError and is fatal to the host.
//
// # Seed
//
// seed.cue is a CUE document. Its definitions constrain the data (positive
// ids, known categories, egg groups and moves that exist) so most seed
// defects are reported before any SQL runs; the remaining ones (for example
// two names differing only in case) are caught by table constraints.
//
// # Drivers
//
//   - DriverCGO ("sqlite3"): github.com/mattn/go-sqlite3, the default
//   - DriverPureGo ("sqlite"): modernc.org/sqlite, for CGO_ENABLED=0 builds
//
// Both are opened in shared-cache memory mode so every pooled connection
// sees the same database. Foreign keys are enabled through the DSN because
// the pragma is per connection.
//
// # Reads
//
// All name lookups are exact up to case. Multi-row reads are ordered by id
// and return empty slices rather than nil.
package catalog

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/eggdex/internal/names"
)

// Every name match below is exact apart from case (COLLATE NOCASE) and every
// multi-row read has an ORDER BY on a stable id, so identical calls return
// identical slices.

// CreatureExists reports whether a creature with the given name exists.
func (s *Store) CreatureExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM creature
		WHERE name = ? COLLATE NOCASE
	`, names.Normalize(name)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query creature exists: %w", err)
	}

	return count > 0, nil
}

// EggGroupsOf returns the egg group names of a creature, ordered by egg group id.
// Returns an empty slice when the creature has no groups or does not exist.
func (s *Store) EggGroupsOf(ctx context.Context, name string) ([]string, error) {
	return s.queryNames(ctx, "egg groups", `
		SELECT g.name
		FROM creature c
		JOIN creature_egg_group cg ON c.creature_id = cg.creature_id
		JOIN egg_group g ON cg.egg_group_id = g.egg_group_id
		WHERE c.name = ? COLLATE NOCASE
		ORDER BY g.egg_group_id ASC
	`, names.Normalize(name))
}

// EggMovesOf returns the names of moves a creature learns by breeding,
// ordered by move id. Returns an empty slice when there are none.
func (s *Store) EggMovesOf(ctx context.Context, name string) ([]string, error) {
	return s.queryNames(ctx, "egg moves", `
		SELECT m.name
		FROM creature c
		JOIN creature_move cm ON c.creature_id = cm.creature_id
		JOIN move m ON cm.move_id = m.move_id
		WHERE c.name = ? COLLATE NOCASE
		  AND cm.method = ?
		ORDER BY m.move_id ASC
	`, names.Normalize(name), MethodEgg)
}

// CompatibleWith returns every creature sharing at least one egg group with
// the named creature, once each, ordered by creature id. The creature itself
// is included whenever it has a group.
func (s *Store) CompatibleWith(ctx context.Context, name string) ([]string, error) {
	return s.queryNames(ctx, "compatible creatures", `
		SELECT c.name
		FROM creature c
		JOIN creature_egg_group cg ON c.creature_id = cg.creature_id
		WHERE cg.egg_group_id IN (
			SELECT qg.egg_group_id
			FROM creature q
			JOIN creature_egg_group qg ON q.creature_id = qg.creature_id
			WHERE q.name = ? COLLATE NOCASE
		)
		GROUP BY c.creature_id, c.name
		ORDER BY c.creature_id ASC
	`, names.Normalize(name))
}

// CreatureNames returns every creature name ordered by creature id.
func (s *Store) CreatureNames(ctx context.Context) ([]string, error) {
	return s.queryNames(ctx, "creature names", `
		SELECT name
		FROM creature
		ORDER BY creature_id ASC
	`)
}

// Creature retrieves a single creature by name.
// Returns ErrNotFound if no creature matches.
func (s *Store) Creature(ctx context.Context, name string) (Creature, error) {
	var c Creature
	var secondary sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT creature_id, name, primary_type, secondary_type
		FROM creature
		WHERE name = ? COLLATE NOCASE
	`, names.Normalize(name)).Scan(&c.ID, &c.Name, &c.PrimaryType, &secondary)
	if errors.Is(err, sql.ErrNoRows) {
		return Creature{}, fmt.Errorf("creature %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Creature{}, fmt.Errorf("query creature: %w", err)
	}

	c.SecondaryType = secondary.String
	return c, nil
}

// Move retrieves a single move by name.
// Returns ErrNotFound if no move matches.
func (s *Store) Move(ctx context.Context, name string) (Move, error) {
	var m Move
	var category string
	var power, accuracy sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT move_id, name, type, category, power, accuracy
		FROM move
		WHERE name = ? COLLATE NOCASE
	`, names.Normalize(name)).Scan(&m.ID, &m.Name, &m.Type, &category, &power, &accuracy)
	if errors.Is(err, sql.ErrNoRows) {
		return Move{}, fmt.Errorf("move %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Move{}, fmt.Errorf("query move: %w", err)
	}

	m.Category = Category(category)
	if power.Valid {
		m.Power = &power.Int64
	}
	if accuracy.Valid {
		m.Accuracy = &accuracy.Int64
	}
	return m, nil
}

// Stats counts creatures, egg groups and moves.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM creature),
			(SELECT COUNT(*) FROM egg_group),
			(SELECT COUNT(*) FROM move)
	`).Scan(&st.Creatures, &st.EggGroups, &st.Moves)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}

	return st, nil
}

// queryNames runs a query whose single column is a name.
// Returns an empty slice (not nil) when no rows match.
func (s *Store) queryNames(ctx context.Context, what, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		result = append(result, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}

	return result, nil
}

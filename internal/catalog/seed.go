package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed seed.cue
var seedCUE []byte

// seedDoc mirrors the concrete (non-definition) fields of seed.cue.
type seedDoc struct {
	Groups    []string       `json:"groups"`
	Moves     []seedMove     `json:"moves"`
	Creatures []seedCreature `json:"creatures"`
}

type seedMove struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    *int64 `json:"power"`
	Accuracy *int64 `json:"accuracy"`
}

type seedCreature struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Primary   string        `json:"primary"`
	Secondary *string       `json:"secondary"`
	EggGroups []string      `json:"egg_groups"`
	Learnset  []seedLearned `json:"learnset"`
}

type seedLearned struct {
	Move   string `json:"move"`
	Method string `json:"method"`
}

// decodeSeed compiles a seed document and checks it against the
// definitions it declares. Every field must be concrete.
func decodeSeed(src []byte) (*seedDoc, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(src, cue.Filename("seed.cue"))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile seed: %w", err)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}

	var doc seedDoc
	if err := value.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	return &doc, nil
}

// insertSeed writes the whole seed in one transaction.
// Either every row lands or none do.
func insertSeed(ctx context.Context, db *sql.DB, doc *seedDoc) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, name := range doc.Groups {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO egg_group (name) VALUES (?)`, name,
		); err != nil {
			return fmt.Errorf("insert egg group %q: %w", name, err)
		}
	}

	for _, m := range doc.Moves {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO move (name, type, category, power, accuracy)
			VALUES (?, ?, ?, ?, ?)
		`, m.Name, m.Type, m.Category, nullInt(m.Power), nullInt(m.Accuracy)); err != nil {
			return fmt.Errorf("insert move %q: %w", m.Name, err)
		}
	}

	for _, c := range doc.Creatures {
		var secondary sql.NullString
		if c.Secondary != nil {
			secondary = sql.NullString{String: *c.Secondary, Valid: true}
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO creature (creature_id, name, primary_type, secondary_type)
			VALUES (?, ?, ?, ?)
		`, c.ID, c.Name, c.Primary, secondary); err != nil {
			return fmt.Errorf("insert creature %q: %w", c.Name, err)
		}

		for _, group := range c.EggGroups {
			if err = insertLinked(ctx, tx, `
				INSERT INTO creature_egg_group (creature_id, egg_group_id)
				SELECT ?, egg_group_id FROM egg_group WHERE name = ?
			`, c.ID, group); err != nil {
				return fmt.Errorf("link %q to egg group %q: %w", c.Name, group, err)
			}
		}

		for _, l := range c.Learnset {
			if err = insertLinked(ctx, tx, `
				INSERT INTO creature_move (creature_id, move_id, method)
				SELECT ?, move_id, ? FROM move WHERE name = ?
			`, c.ID, l.Method, l.Move); err != nil {
				return fmt.Errorf("link %q to move %q: %w", c.Name, l.Move, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	return nil
}

// insertLinked runs an INSERT ... SELECT that must produce exactly one row.
// Zero rows means the referenced group or move does not exist.
func insertLinked(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("expected 1 row, inserted %d", n)
	}

	return nil
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SeedsCatalog(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := createTestStore(t, driver)

			stats, err := s.Stats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Stats{Creatures: 12, EggGroups: 5, Moves: 6}, stats)
			assert.Equal(t, driver, s.Driver())
		})
	}
}

func TestOpen_DefaultDriver(t *testing.T) {
	s, err := Open(context.Background(), Options{Logger: discardLogger()})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, DriverCGO, s.Driver())
}

func TestOpen_ForeignKeysOnEveryConnection(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := createTestStore(t, driver)
			ctx := context.Background()

			// Pin several connections at once so the pragma is checked on more than one.
			conns := make([]interface{ Close() error }, 0, DefaultMaxConns)
			for i := 0; i < DefaultMaxConns; i++ {
				conn, err := s.DB().Conn(ctx)
				require.NoError(t, err)
				conns = append(conns, conn)

				var fk int
				require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
				assert.Equal(t, 1, fk, "connection %d", i)
			}
			for _, c := range conns {
				c.Close()
			}

			assert.NoError(t, s.verifyPragma(ctx, "foreign_keys", "1"))
		})
	}
}

func TestOpen_StoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	s1 := createTestStore(t, DriverCGO)
	s2 := createTestStore(t, DriverCGO)
	require.NotEqual(t, s1.ID(), s2.ID())

	_, err := s1.DB().ExecContext(ctx, `DELETE FROM creature WHERE name = 'Ditto'`)
	require.NoError(t, err)

	ok, err := s1.CreatureExists(ctx, "Ditto")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s2.CreatureExists(ctx, "Ditto")
	require.NoError(t, err)
	assert.True(t, ok, "deleting from one store must not touch another")
}

func TestOpen_CascadesOnDelete(t *testing.T) {
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			s := createTestStore(t, driver)
			ctx := context.Background()

			_, err := s.DB().ExecContext(ctx, `DELETE FROM creature WHERE creature_id = 1`)
			require.NoError(t, err)

			var groups, moves int
			require.NoError(t, s.DB().QueryRowContext(ctx,
				`SELECT COUNT(*) FROM creature_egg_group WHERE creature_id = 1`).Scan(&groups))
			require.NoError(t, s.DB().QueryRowContext(ctx,
				`SELECT COUNT(*) FROM creature_move WHERE creature_id = 1`).Scan(&moves))
			assert.Zero(t, groups)
			assert.Zero(t, moves)

			// Deleting an egg group removes Ditto's membership too.
			_, err = s.DB().ExecContext(ctx, `DELETE FROM egg_group WHERE name = 'Psychic'`)
			require.NoError(t, err)

			dittoGroups, err := s.EggGroupsOf(ctx, "Ditto")
			require.NoError(t, err)
			assert.Equal(t, []string{"Monster", "Grass", "Bug", "Normal"}, dittoGroups)
		})
	}
}

func TestOpen_CascadesOnUpdate(t *testing.T) {
	s := createTestStore(t, DriverCGO)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx, `UPDATE creature SET creature_id = 1000 WHERE name = 'Squirtle'`)
	require.NoError(t, err)

	moves, err := s.EggMovesOf(ctx, "Squirtle")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fake Out", "Haze"}, moves)
}

func TestOpen_RejectsOrphanAssociation(t *testing.T) {
	s := createTestStore(t, DriverPureGo)

	_, err := s.DB().ExecContext(context.Background(),
		`INSERT INTO creature_egg_group (creature_id, egg_group_id) VALUES (999, 1)`)
	assert.Error(t, err, "foreign key must reject an unknown creature")
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "postgres", Logger: discardLogger()})
	require.Error(t, err)

	var initErr *InitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, StageOpen, initErr.Stage)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestOpen_SeedDefects(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		wantMsg string
	}{
		{
			name:    "cue syntax error",
			seed:    `groups: [`,
			wantMsg: "compile seed",
		},
		{
			name: "category outside definition",
			seed: strings.Replace(string(seedCUE),
				`category: "Special"`, `category: "Magic"`, 1),
			wantMsg: "seed",
		},
		{
			name: "egg group not declared",
			seed: strings.Replace(string(seedCUE),
				`egg_groups: ["Bug"]`, `egg_groups: ["Water 1"]`, 1),
			wantMsg: "seed",
		},
		{
			name: "duplicate name differing in case",
			seed: `
groups: ["Monster"]
moves: []
creatures: [
	{id: 1, name: "Ditto", primary: "Normal", secondary: null, egg_groups: [], learnset: []},
	{id: 2, name: "DITTO", primary: "Normal", secondary: null, egg_groups: [], learnset: []},
]`,
			wantMsg: `insert creature "DITTO"`,
		},
		{
			name: "category check constraint",
			seed: `
groups: []
moves: [{name: "Splash", type: "Water", category: "Magic", power: null, accuracy: null}]
creatures: []`,
			wantMsg: `insert move "Splash"`,
		},
		{
			name: "non-positive power",
			seed: `
groups: []
moves: [{name: "Splash", type: "Water", category: "Status", power: 0, accuracy: null}]
creatures: []`,
			wantMsg: `insert move "Splash"`,
		},
		{
			name: "non-positive creature id",
			seed: `
groups: []
moves: []
creatures: [{id: 0, name: "Missingno", primary: "Normal", secondary: null, egg_groups: [], learnset: []}]`,
			wantMsg: `insert creature "Missingno"`,
		},
		{
			name: "unknown egg group link",
			seed: `
groups: ["Monster"]
moves: []
creatures: [{id: 1, name: "Ditto", primary: "Normal", secondary: null, egg_groups: ["Ditto"], learnset: []}]`,
			wantMsg: `link "Ditto" to egg group "Ditto"`,
		},
		{
			name: "unknown move link",
			seed: `
groups: []
moves: []
creatures: [{id: 1, name: "Squirtle", primary: "Water", secondary: null, egg_groups: [],
	learnset: [{move: "Hydro Pump", method: "egg"}]}]`,
			wantMsg: `link "Squirtle" to move "Hydro Pump"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := openWithSeed(t, tt.seed)
			require.Error(t, err)

			var initErr *InitError
			require.True(t, errors.As(err, &initErr), "got %T", err)
			assert.Equal(t, StageSeed, initErr.Stage)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestOpen_AlternateSeed(t *testing.T) {
	s, err := openWithSeed(t, `
groups: ["Monster"]
moves: [
	{name: "Tackle", type: "Normal", category: "Physical", power: 40, accuracy: 100},
	{name: "Haze", type: "Ice", category: "Status", power: null, accuracy: null},
]
creatures: [{id: 7, name: "Squirtle", primary: "Water", secondary: null, egg_groups: ["Monster"],
	learnset: [{move: "Tackle", method: "level-up"}, {move: "Haze", method: "egg"}]}]`)
	require.NoError(t, err)

	moves, err := s.EggMovesOf(context.Background(), "Squirtle")
	require.NoError(t, err)
	assert.Equal(t, []string{"Haze"}, moves, "only egg-method moves are egg moves")
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	assert.NoError(t, s.Close())
}

func TestClose_MultipleCalls(t *testing.T) {
	s, err := Open(context.Background(), Options{Logger: discardLogger()})
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	_ = s.Close()
}

func TestDecodeSeed_Embedded(t *testing.T) {
	doc, err := decodeSeed(seedCUE)
	require.NoError(t, err)

	assert.Equal(t, []string{"Monster", "Grass", "Bug", "Normal", "Psychic"}, doc.Groups)
	require.Len(t, doc.Moves, 6)
	require.Len(t, doc.Creatures, 12)

	// Defaults from the definitions are applied.
	var ditto, mewtwo seedCreature
	for _, c := range doc.Creatures {
		switch c.Name {
		case "Ditto":
			ditto = c
		case "MewTwo":
			mewtwo = c
		}
	}
	assert.Equal(t, doc.Groups, ditto.EggGroups)
	assert.Nil(t, ditto.Secondary)
	assert.Empty(t, mewtwo.EggGroups)
	assert.Empty(t, mewtwo.Learnset)

	amnesia := doc.Moves[0]
	assert.Equal(t, "Amnesia", amnesia.Name)
	assert.Nil(t, amnesia.Power)
	assert.Nil(t, amnesia.Accuracy)

	mirrorCoat := doc.Moves[5]
	assert.Equal(t, "Mirror Coat", mirrorCoat.Name)
	assert.Nil(t, mirrorCoat.Power)
	require.NotNil(t, mirrorCoat.Accuracy)
	assert.Equal(t, int64(100), *mirrorCoat.Accuracy)
}

func TestInitError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(&InitError{Stage: StageSchema, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "catalog init (schema): boom", err.Error())
}

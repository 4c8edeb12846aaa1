package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes YAML content to a temp file and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
steps:
  - op: breed
    mother: Ditto
    other: Squirtle
    expect:
      compatible: true
      donor: Squirtle
      values: [Fake Out, Haze]
      ordered: true
  - op: exists
    name: Pikachu
    expect:
      found: false
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	require.Len(t, scenario.Steps, 2)

	breed := scenario.Steps[0]
	assert.Equal(t, OpBreed, breed.Op)
	assert.Equal(t, "Ditto", breed.Mother)
	assert.Equal(t, "Squirtle", breed.Other)
	require.NotNil(t, breed.Expect.Compatible)
	assert.True(t, *breed.Expect.Compatible)
	assert.Equal(t, "Squirtle", breed.Expect.Donor)
	assert.Equal(t, []string{"Fake Out", "Haze"}, breed.Expect.Values)
	assert.True(t, breed.Expect.Ordered)

	exists := scenario.Steps[1]
	require.NotNil(t, exists.Expect.Found)
	assert.False(t, *exists.Expect.Found)
	assert.Nil(t, exists.Expect.Values, "unset list must stay nil so it is not checked")
}

func TestLoadScenario_EmptyValuesIsChecked(t *testing.T) {
	path := writeScenario(t, `
name: empty_values
description: "values: [] asserts an empty list"
steps:
  - op: egg_moves
    name: Ivysaur
    expect:
      values: []
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.NotNil(t, scenario.Steps[0].Expect.Values)
	assert.Empty(t, scenario.Steps[0].Expect.Values)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "Typo in expect"
steps:
  - op: exists
    name: Ditto
    expects:
      found: true
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "expects")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "No name"
steps:
  - op: exists
    name: Ditto
`,
			wantErr: "name is required",
		},
		{
			name: "missing description",
			content: `
name: no_description
steps:
  - op: exists
    name: Ditto
`,
			wantErr: "description is required",
		},
		{
			name: "no steps",
			content: `
name: no_steps
description: "Nothing to do"
steps: []
`,
			wantErr: "steps list is required",
		},
		{
			name: "missing op",
			content: `
name: no_op
description: "Step without op"
steps:
  - name: Ditto
`,
			wantErr: "steps[0]: op is required",
		},
		{
			name: "unknown op",
			content: `
name: bad_op
description: "Unknown op"
steps:
  - op: hatch
    name: Ditto
`,
			wantErr: `unknown op "hatch"`,
		},
		{
			name: "breed with name",
			content: `
name: breed_name
description: "Breed takes mother and other"
steps:
  - op: breed
    name: Ditto
`,
			wantErr: "use mother/other",
		},
		{
			name: "donor on exists",
			content: `
name: donor_exists
description: "Donor only applies to breed"
steps:
  - op: exists
    name: Ditto
    expect:
      donor: Ditto
`,
			wantErr: "compatible/donor are only valid for breed",
		},
		{
			name: "text on egg_groups",
			content: `
name: text_groups
description: "Text only applies to breed and search"
steps:
  - op: egg_groups
    name: Ditto
    expect:
      text: "Egg Groups: Monster"
`,
			wantErr: "text is only valid",
		},
		{
			name: "found on compatible",
			content: `
name: found_compatible
description: "Found is not reported by compatible"
steps:
  - op: compatible
    name: Ditto
    expect:
      found: true
`,
			wantErr: "found is not valid for compatible",
		},
		{
			name: "mother on search",
			content: `
name: mother_search
description: "Search takes a name"
steps:
  - op: search
    mother: Ditto
`,
			wantErr: "mother/other are only valid for breed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestLoadBundledScenarios validates the scenario files in testdata/scenarios.
func TestLoadBundledScenarios(t *testing.T) {
	tests := []struct {
		file  string
		name  string
		steps int
	}{
		{"../../testdata/scenarios/ditto_rules.yaml", "ditto_rules", 6},
		{"../../testdata/scenarios/catalog_queries.yaml", "catalog_queries", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario, err := LoadScenario(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.name, scenario.Name)
			assert.Len(t, scenario.Steps, tt.steps)
		})
	}
}

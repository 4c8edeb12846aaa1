package harness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_DittoRules(t *testing.T) {
	scenario, err := LoadScenario("../../testdata/scenarios/ditto_rules.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, testOptions(), scenario))
}

func TestAssertGolden_Deterministic(t *testing.T) {
	scenario, err := LoadScenario("../../testdata/scenarios/ditto_rules.yaml")
	require.NoError(t, err)

	// A second, independent catalog must produce the same records.
	for range 2 {
		result, err := Run(t.Context(), testOptions(), scenario)
		require.NoError(t, err)
		require.NoError(t, AssertGolden(t, scenario.Name, result))
	}
}

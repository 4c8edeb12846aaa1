package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted series of catalog queries with expected answers.
type Scenario struct {
	// Name uniquely identifies this scenario. Used as the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Steps run in order against one Resolver.
	Steps []Step `yaml:"steps"`
}

// Step is one query and its expectation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Name is the creature for single-creature ops.
	Name string `yaml:"name,omitempty"`

	// Mother and Other are the parents for OpBreed.
	Mother string `yaml:"mother,omitempty"`
	Other  string `yaml:"other,omitempty"`

	// Expect lists what must hold. Unset fields are not checked.
	Expect Expect `yaml:"expect"`
}

// Expect holds the checks for a step.
type Expect struct {
	// Found is checked by exists, search and (for the mother) breed.
	Found *bool `yaml:"found,omitempty"`

	// Values is the exact list returned by egg_groups, egg_moves and
	// compatible, the compatible list of search, or the egg moves of breed.
	// Compared as a set unless Ordered is true.
	Values  []string `yaml:"values,omitempty"`
	Ordered bool     `yaml:"ordered,omitempty"`

	// Contains and Excludes are subset checks on the same list as Values.
	Contains []string `yaml:"contains,omitempty"`
	Excludes []string `yaml:"excludes,omitempty"`

	// Compatible and Donor are checked by breed.
	Compatible *bool  `yaml:"compatible,omitempty"`
	Donor      string `yaml:"donor,omitempty"`

	// Text is the exact rendered output of breed or search.
	Text string `yaml:"text,omitempty"`
}

// Op values.
const (
	OpExists     = "exists"
	OpEggGroups  = "egg_groups"
	OpEggMoves   = "egg_moves"
	OpCompatible = "compatible"
	OpBreed      = "breed"
	OpSearch     = "search"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict fields catch typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, st *Step) error {
	switch st.Op {
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	case OpExists, OpEggGroups, OpEggMoves, OpCompatible, OpSearch:
		if st.Mother != "" || st.Other != "" {
			return fmt.Errorf("steps[%d]: mother/other are only valid for %s", index, OpBreed)
		}
		if st.Expect.Compatible != nil || st.Expect.Donor != "" {
			return fmt.Errorf("steps[%d]: compatible/donor are only valid for %s", index, OpBreed)
		}
	case OpBreed:
		if st.Name != "" {
			return fmt.Errorf("steps[%d]: use mother/other, not name, for %s", index, OpBreed)
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	if st.Expect.Text != "" && st.Op != OpBreed && st.Op != OpSearch {
		return fmt.Errorf("steps[%d]: text is only valid for %s and %s", index, OpBreed, OpSearch)
	}
	if st.Expect.Found != nil && st.Op != OpExists && st.Op != OpSearch && st.Op != OpBreed {
		return fmt.Errorf("steps[%d]: found is not valid for %s", index, st.Op)
	}

	return nil
}

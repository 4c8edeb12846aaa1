package harness

import (
	"fmt"
	"strings"
)

// StepRecord is what one step observed.
type StepRecord struct {
	Index int      `json:"index"`
	Op    string   `json:"op"`
	Args  []string `json:"args"`

	// Found is set by exists, search and breed (mother side).
	Found *bool `json:"found,omitempty"`

	// Compatible and Donor are set by breed.
	Compatible *bool  `json:"compatible,omitempty"`
	Donor      string `json:"donor,omitempty"`

	// Values is the list the step's list checks apply to.
	Values []string `json:"values"`

	// Text is the rendered output of breed and search.
	Text string `json:"text,omitempty"`
}

// Label identifies the step in messages, e.g. "[2] breed(Ditto, Squirtle)".
func (s StepRecord) Label() string {
	return fmt.Sprintf("[%d] %s(%s)", s.Index, s.Op, strings.Join(s.Args, ", "))
}

// Result is the outcome of a scenario run.
type Result struct {
	// Scenario is the scenario name.
	Scenario string `json:"scenario"`

	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Steps records every executed step in order.
	Steps []StepRecord `json:"steps"`

	// Errors contains failed expectations. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Steps:    []StepRecord{},
		Errors:   []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

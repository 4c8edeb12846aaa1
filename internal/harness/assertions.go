package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/eggdex/internal/names"
)

// AssertionError is returned when an expectation fails.
// It includes the step that produced the failure.
type AssertionError struct {
	Step     string // Step label, e.g. "[1] exists(Ditto)"
	Check    string // Which expectation failed: found, values, contains, ...
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s", e.Step, e.Check, e.Expected, e.Actual)
}

// checkStep evaluates every set expectation against a step record.
// Returns nil when all of them hold.
func checkStep(rec StepRecord, exp Expect) []*AssertionError {
	var failures []*AssertionError
	fail := func(check, expected, actual string) {
		failures = append(failures, &AssertionError{
			Step:     rec.Label(),
			Check:    check,
			Expected: expected,
			Actual:   actual,
		})
	}

	if exp.Found != nil {
		got := rec.Found != nil && *rec.Found
		if got != *exp.Found {
			fail("found", fmt.Sprint(*exp.Found), fmt.Sprint(got))
		}
	}

	if exp.Compatible != nil {
		got := rec.Compatible != nil && *rec.Compatible
		if got != *exp.Compatible {
			fail("compatible", fmt.Sprint(*exp.Compatible), fmt.Sprint(got))
		}
	}

	if exp.Donor != "" && !names.Equal(exp.Donor, rec.Donor) {
		fail("donor", quote(exp.Donor), quote(rec.Donor))
	}

	if exp.Values != nil {
		if exp.Ordered {
			if !sameOrdered(exp.Values, rec.Values) {
				fail("values (ordered)", list(exp.Values), list(rec.Values))
			}
		} else if !sameSet(exp.Values, rec.Values) {
			fail("values", list(exp.Values), list(rec.Values))
		}
	}

	for _, want := range exp.Contains {
		if !containsFold(rec.Values, want) {
			fail("contains", quote(want), list(rec.Values))
		}
	}

	for _, unwanted := range exp.Excludes {
		if containsFold(rec.Values, unwanted) {
			fail("excludes", "no "+quote(unwanted), list(rec.Values))
		}
	}

	if exp.Text != "" && strings.TrimRight(exp.Text, "\n") != rec.Text {
		fail("text", quote(exp.Text), quote(rec.Text))
	}

	return failures
}

// sameOrdered compares two lists element by element, ignoring case.
func sameOrdered(want, got []string) bool {
	return slices.EqualFunc(want, got, names.Equal)
}

// sameSet compares two lists as multisets, ignoring case.
func sameSet(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	counts := make(map[string]int, len(want))
	for _, w := range want {
		counts[names.Fold(w)]++
	}
	for _, g := range got {
		key := names.Fold(g)
		if counts[key] == 0 {
			return false
		}
		counts[key]--
	}
	return true
}

func containsFold(items []string, want string) bool {
	return slices.ContainsFunc(items, func(item string) bool {
		return names.Equal(item, want)
	})
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

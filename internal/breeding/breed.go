package breeding

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/eggdex/internal/names"
)

// UniversalBreeder is the species that shares a group with everything.
// When it is the mother, the other parent donates the egg moves.
const UniversalBreeder = "Ditto"

// Display strings shared by every result type.
const (
	NotFoundText   = "Not Found"
	NoneText       = "None"
	BadMatchText   = "Bad Match!"
	eggGroupsLabel = "Egg Groups: "
	eggMovesLabel  = "Egg Moves: "
)

// SideSummary describes one parent of a breeding query.
type SideSummary struct {
	Name      string   `json:"name"`
	Found     bool     `json:"found"`
	EggGroups []string `json:"egg_groups"`
	Summary   string   `json:"summary"` // "Not Found" or "Egg Groups: ..."
}

func (s SideSummary) String() string {
	return s.Summary
}

// Outcome is the breeding verdict. Donor and EggMoves are only set when
// Compatible is true.
type Outcome struct {
	Compatible bool     `json:"compatible"`
	Donor      string   `json:"donor,omitempty"`
	EggMoves   []string `json:"egg_moves,omitempty"`
	Summary    string   `json:"summary"` // "Bad Match!" or "<donor>\nEgg Moves: ..."
}

func (o Outcome) String() string {
	return o.Summary
}

// BreedingResult is the answer to ResolveBreeding.
type BreedingResult struct {
	Mother  SideSummary `json:"mother"`
	Other   SideSummary `json:"other"`
	Outcome Outcome     `json:"outcome"`
}

// String renders the result one field per line.
func (b BreedingResult) String() string {
	return fmt.Sprintf("Mother: %s\nOther: %s\nResult: %s", b.Mother, b.Other, b.Outcome)
}

// ResolveBreeding decides whether mother and other can breed and, if so,
// which egg moves the offspring inherits.
//
// The pair is compatible when their egg group sets intersect. The donor is
// other when mother is the UniversalBreeder and mother otherwise; the rule
// looks at mother only, so (X, Ditto) keeps X as donor.
func (r *Resolver) ResolveBreeding(ctx context.Context, mother, other string) (BreedingResult, error) {
	motherGroups, err := r.catalog.EggGroupsOf(ctx, mother)
	if err != nil {
		return BreedingResult{}, err
	}
	otherGroups, err := r.catalog.EggGroupsOf(ctx, other)
	if err != nil {
		return BreedingResult{}, err
	}

	var result BreedingResult
	if result.Mother, err = r.side(ctx, mother, motherGroups); err != nil {
		return BreedingResult{}, err
	}
	if result.Other, err = r.side(ctx, other, otherGroups); err != nil {
		return BreedingResult{}, err
	}

	if !overlaps(motherGroups, otherGroups) {
		result.Outcome = Outcome{Summary: BadMatchText}
		r.logger.Debug("breeding resolved", "mother", mother, "other", other, "compatible", false)
		return result, nil
	}

	donor := mother
	if names.Equal(mother, UniversalBreeder) {
		donor = other
	}

	moves, err := r.catalog.EggMovesOf(ctx, donor)
	if err != nil {
		return BreedingResult{}, err
	}

	result.Outcome = Outcome{
		Compatible: true,
		Donor:      donor,
		EggMoves:   moves,
		Summary:    donor + "\n" + eggMovesLabel + joinOrNone(moves),
	}
	r.logger.Debug("breeding resolved",
		"mother", mother,
		"other", other,
		"compatible", true,
		"donor", donor,
		"egg_moves", len(moves),
	)

	return result, nil
}

// side builds the summary for one parent.
func (r *Resolver) side(ctx context.Context, name string, groups []string) (SideSummary, error) {
	found, err := r.catalog.CreatureExists(ctx, name)
	if err != nil {
		return SideSummary{}, err
	}
	if !found {
		return SideSummary{Name: name, EggGroups: []string{}, Summary: NotFoundText}, nil
	}

	return SideSummary{
		Name:      name,
		Found:     true,
		EggGroups: groups,
		Summary:   eggGroupsLabel + joinOrNone(groups),
	}, nil
}

// overlaps reports whether a and b share at least one group.
func overlaps(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, g := range a {
		seen[names.Fold(g)] = struct{}{}
	}
	for _, g := range b {
		if _, ok := seen[names.Fold(g)]; ok {
			return true
		}
	}
	return false
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return NoneText
	}
	return strings.Join(items, ", ")
}

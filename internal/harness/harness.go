package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/eggdex/internal/breeding"
	"github.com/roach88/eggdex/internal/catalog"
)

// Harness runs scenarios against a Resolver.
type Harness struct {
	resolver *breeding.Resolver
	logger   *slog.Logger
}

// New creates a harness over an existing resolver.
func New(resolver *breeding.Resolver, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{resolver: resolver, logger: logger}
}

// Run executes a scenario in a fresh catalog and returns the result.
//
// Each scenario gets its own in-memory database, so scenarios never see
// each other. The catalog is closed before Run returns.
func Run(ctx context.Context, opts catalog.Options, scenario *Scenario) (*Result, error) {
	store, err := catalog.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return New(breeding.New(store, opts.Logger), opts.Logger).Run(ctx, scenario)
}

// Run executes every step in order and checks its expectations.
//
// A failed expectation is recorded in Result.Errors and execution
// continues. A catalog error aborts the run and is returned.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	result := NewResult(scenario.Name)

	for i, step := range scenario.Steps {
		rec, err := h.execute(ctx, i+1, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		result.Steps = append(result.Steps, rec)

		for _, failure := range checkStep(rec, step.Expect) {
			result.AddError(failure.Error())
		}
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"steps", len(result.Steps),
		"pass", result.Pass,
	)

	return result, nil
}

// execute runs one step and records what it observed.
func (h *Harness) execute(ctx context.Context, index int, step Step) (StepRecord, error) {
	rec := StepRecord{
		Index:  index,
		Op:     step.Op,
		Args:   []string{step.Name},
		Values: []string{},
	}

	switch step.Op {
	case OpExists:
		found, err := h.resolver.Exists(ctx, step.Name)
		if err != nil {
			return StepRecord{}, err
		}
		rec.Found = &found

	case OpEggGroups:
		groups, err := h.resolver.EggGroupsOf(ctx, step.Name)
		if err != nil {
			return StepRecord{}, err
		}
		rec.Values = groups

	case OpEggMoves:
		moves, err := h.resolver.EggMovesOf(ctx, step.Name)
		if err != nil {
			return StepRecord{}, err
		}
		rec.Values = moves

	case OpCompatible:
		compatible, err := h.resolver.CompatibleWith(ctx, step.Name)
		if err != nil {
			return StepRecord{}, err
		}
		rec.Values = compatible

	case OpSearch:
		res, err := h.resolver.Search(ctx, step.Name)
		if err != nil {
			return StepRecord{}, err
		}
		rec.Found = &res.Found
		rec.Values = res.Compatible
		rec.Text = res.String()

	case OpBreed:
		rec.Args = []string{step.Mother, step.Other}
		res, err := h.resolver.ResolveBreeding(ctx, step.Mother, step.Other)
		if err != nil {
			return StepRecord{}, err
		}
		compatible := res.Outcome.Compatible
		rec.Found = &res.Mother.Found
		rec.Compatible = &compatible
		rec.Donor = res.Outcome.Donor
		if res.Outcome.EggMoves != nil {
			rec.Values = res.Outcome.EggMoves
		}
		rec.Text = res.String()

	default:
		return StepRecord{}, fmt.Errorf("unknown op %q", step.Op)
	}

	return rec, nil
}

package breeding

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/roach88/eggdex/internal/names"
)

// Suggest returns up to limit catalog names that look like name, closest
// first. Prefix matches rank ahead of edit-distance matches; ties keep
// catalog order. It returns an empty slice when nothing is close enough.
func (r *Resolver) Suggest(ctx context.Context, name string, limit int) ([]string, error) {
	all, err := r.catalog.CreatureNames(ctx)
	if err != nil {
		return nil, err
	}

	query := names.Fold(name)
	if query == "" || limit <= 0 {
		return []string{}, nil
	}

	type scored struct {
		name string
		dist int
	}
	matches := make([]scored, 0, len(all))
	for _, cand := range all {
		folded := names.Fold(cand)
		switch {
		case folded == query:
			matches = append(matches, scored{cand, -2})
		case strings.HasPrefix(folded, query) && len(query) >= 2:
			matches = append(matches, scored{cand, -1})
		default:
			dist := levenshtein.ComputeDistance(query, folded)
			if dist > distanceLimit(len(folded)) {
				continue
			}
			matches = append(matches, scored{cand, dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	result := make([]string, 0, limit)
	for _, m := range matches {
		if len(result) == limit {
			break
		}
		result = append(result, m.name)
	}
	return result, nil
}

// distanceLimit is the largest edit distance accepted for a candidate of
// the given length.
func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

package breeding

import "context"

const breedableLabel = "Breedable: "

// SearchResult lists the breeding partners of one creature.
type SearchResult struct {
	Name       string   `json:"name"`
	Found      bool     `json:"found"`
	Compatible []string `json:"compatible"`
	Summary    string   `json:"summary"` // "Not Found" or "Breedable: ..."
}

func (s SearchResult) String() string {
	return s.Summary
}

// Search checks that name exists and lists every creature it can breed with.
// An unknown name yields Found=false and no catalog scan.
func (r *Resolver) Search(ctx context.Context, name string) (SearchResult, error) {
	found, err := r.catalog.CreatureExists(ctx, name)
	if err != nil {
		return SearchResult{}, err
	}
	if !found {
		return SearchResult{Name: name, Compatible: []string{}, Summary: NotFoundText}, nil
	}

	compatible, err := r.catalog.CompatibleWith(ctx, name)
	if err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Name:       name,
		Found:      true,
		Compatible: compatible,
		Summary:    breedableLabel + joinOrNone(compatible),
	}, nil
}

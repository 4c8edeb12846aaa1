// Package breeding resolves breeding compatibility over the creature catalog.
//
// Two creatures can breed when their egg group sets intersect. When they can,
// the offspring inherits the egg moves of the donor: the mother, unless the
// mother is Ditto, in which case the other parent. Ditto reaches every
// creature only because the catalog puts it in every egg group; nothing here
// special-cases it except donor selection.
//
// # Operations
//
//   - Exists, EggGroupsOf, EggMovesOf, CompatibleWith: single lookups
//   - ResolveBreeding: the two-parent decision, returning a BreedingResult
//   - Search: existence check plus CompatibleWith, returning a SearchResult
//   - Suggest: close catalog names for a misspelled query
//
// Unknown names are not errors. They show up as Found=false, false from
// Exists, or empty slices. Errors only come from the underlying Catalog.
//
// # Known quirks
//
// CompatibleWith lists the queried creature among its own partners, and the
// donor rule inspects the mother only: ResolveBreeding("Squirtle", "Ditto")
// reports Squirtle as donor, as does ResolveBreeding("Ditto", "Squirtle").
// Callers that want a symmetric answer must order the pair themselves.
//
// # Text rendering
//
// Every result carries the Summary string shown to users:
//
//	Not Found
//	Egg Groups: Monster, Grass
//	Egg Groups: None
//	Bad Match!
//	Bulbasaur
//	Egg Moves: Amnesia, Skull Bash
//	Breedable: Caterpie, Ditto
package breeding

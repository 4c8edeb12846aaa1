// Package harness runs scripted breeding scenarios against the catalog.
//
// A scenario is a YAML file listing queries and what each must return.
// The harness executes them in order against a Resolver, records what every
// step observed and reports the expectations that did not hold.
//
// # Scenario Format
//
//	name: ditto_rules
//	description: "Ditto breeds with everything and donates nothing"
//	steps:
//	  - op: exists
//	    name: ditto
//	    expect:
//	      found: true
//	  - op: egg_groups
//	    name: Bulbasaur
//	    expect:
//	      values: [Monster, Grass]
//	      ordered: true
//	  - op: breed
//	    mother: Ditto
//	    other: Squirtle
//	    expect:
//	      compatible: true
//	      donor: Squirtle
//	      values: [Fake Out, Haze]
//
// # Operations
//
//   - exists: checks found
//   - egg_groups, egg_moves, compatible: list checks on the returned names
//   - search: found, text and list checks on the compatible list
//   - breed: found (mother), compatible, donor, text and list checks on the
//     inherited egg moves
//
// List checks are values (exact set, or exact sequence with ordered: true),
// contains and excludes. Every name comparison ignores case.
//
// Unknown YAML fields are rejected so a typo never silently drops a check.
//
// # Isolation
//
// Run opens a fresh in-memory catalog per scenario. Step records are
// deterministic, which makes them suitable for golden file comparison
// (see RunWithGolden).
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/ditto_rules.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(ctx, catalog.Options{}, scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
package harness

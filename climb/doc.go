// Package climb finds shortest routes across an elevation map where each step
// may descend any amount but climb at most one level.
//
// Overview:
//
//   - ShortestPath answers a single-source query: the fewest steps from one
//     cell to another, or "unreachable".
//   - ShortestPathFromAny answers a multi-source query: the fewest steps from
//     the best of many candidate starts (typically every lowest cell). It runs
//     one search backwards from the target under the reversed step rule.
//   - ShortestPathFromEach computes the same answer with one forward query per
//     source. It exists to cross-check the reverse formulation.
//   - DistancesTo returns the whole reverse distance field for inspection.
//
// Step rule:
//
//	forward  cur → n legal  iff  elevation(n)   <= elevation(cur) + 1
//	reverse  n → cur legal  iff  elevation(cur) <= elevation(n)   + 1
//
// Strategies:
//
//   - StrategyHeap (default): binary min-heap with lazy decrease-key, O(N log N).
//   - StrategyQueue: FIFO queue, O(N). Exact because every step costs one.
//   - StrategyScan: whole-table minimum scan per iteration, O(N²). Reference only.
//
// All strategies settle cells in non-decreasing distance order and report the
// same distances. The order among cells at equal distance is unspecified.
//
// Options:
//
//   - WithStrategy(s):   choose the frontier.
//   - WithReturnPath():  fill Result.Path with one shortest route.
//   - WithMaxSteps(n):   never settle cells farther than n steps (n >= 0).
//   - WithOnVisit(fn):   observe each cell as its distance becomes final.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         nil grid.
//   - ErrOutOfBounds:     a source or target outside the grid.
//   - ErrOptionViolation: invalid option value.
//
// An unreachable target is a normal answer (Result.Reachable == false),
// never an error.
//
// Thread safety:
//
//   - A heightmap.Grid is immutable, and every query allocates its own state,
//     so any number of goroutines may query the same grid concurrently.
//
// Example:
//
//	g, _ := heightmap.ParseString(input)
//	res, err := climb.ShortestPath(g, g.Start(), g.End())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res) // steps, or "none"
package climb

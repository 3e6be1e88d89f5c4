// Package heightmap treats a rectangular map of elevation letters as a grid
// graph, ready for step-constrained shortest-path searches.
//
// What:
//
//   - Grid wraps a rectangular map of elevations 'a' (lowest) … 'z' (highest).
//   - Exactly one 'S' (start) and one 'E' (end) marker must be present; they are
//     rewritten to 'a' and 'z' once, during construction.
//   - The map is stored row-major with a one-cell ring of Sentinel elevation
//     around it, so every real cell has exactly four stored neighbors and search
//     loops never branch on bounds.
//
// Why:
//
//   - Terrain puzzles: climb from a start to a summit with a bounded climb per step.
//   - Reverse queries: find the best trailhead among all lowest cells.
//
// Complexity:
//
//   - Parse / New:        O(W×H) time and memory.
//   - Neighbors:          O(1).
//   - CellsWithElevation: O(W×H).
//
// Coordinates:
//
//   - Cell{Row, Col} addresses real cells, (0,0) is the top-left one.
//   - Index / CellAt convert to and from padded row-major indices; the border
//     ring maps to Row or Col of -1, Height or Width.
//
// Errors:
//
//   - ErrEmptyGrid:        no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrMissingStart:     no 'S' marker.
//   - ErrMissingEnd:       no 'E' marker.
//   - ErrDuplicateMarker:  more than one 'S' or 'E'.
//   - ErrInvalidElevation: a byte outside 'a'…'z', 'S', 'E'.
package heightmap

// Package heightmap defines elevation values, cell coordinates and sentinel
// errors used by Grid.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for Grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrMissingStart indicates there is no start marker in the input.
	ErrMissingStart = errors.New("heightmap: start marker 'S' not found")
	// ErrMissingEnd indicates there is no end marker in the input.
	ErrMissingEnd = errors.New("heightmap: end marker 'E' not found")
	// ErrDuplicateMarker indicates a start or end marker appears more than once.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
	// ErrInvalidElevation indicates a byte that is neither an elevation nor a marker.
	ErrInvalidElevation = errors.New("heightmap: invalid elevation symbol")
)

// Elevation is the ordinal height of a cell. Legal values run from Lowest to Highest.
type Elevation byte

const (
	// Lowest is the elevation of the start cell and of every trailhead.
	Lowest Elevation = 'a'
	// Highest is the elevation of the end cell.
	Highest Elevation = 'z'
	// Sentinel fills the border ring. It is higher than Highest+1, so no
	// real cell can ever step onto it.
	Sentinel Elevation = 0xFF

	// StartMarker and EndMarker are the raw symbols rewritten at construction.
	StartMarker byte = 'S'
	EndMarker   byte = 'E'
)

// Valid reports whether e is a legal (non-sentinel) elevation.
func (e Elevation) Valid() bool {
	return e >= Lowest && e <= Highest
}

// CanStep reports whether a move from elevation e onto elevation to is legal:
// it may descend any amount but climb at most one level.
func (e Elevation) CanStep(to Elevation) bool {
	return int(to) <= int(e)+1
}

// String renders the elevation as its letter, or '#' for the sentinel.
func (e Elevation) String() string {
	if e == Sentinel {
		return "#"
	}
	return string(rune(e))
}

// ParseElevation converts a single letter into an Elevation.
func ParseElevation(s string) (Elevation, error) {
	if len(s) != 1 || !Elevation(s[0]).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidElevation, s)
	}
	return Elevation(s[0]), nil
}

// Cell addresses a real grid cell by row and column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Package heightmap provides an immutable elevation grid with a sentinel
// border. It supports:
//
//   - Parsing the puzzle text format ('a'…'z' plus one 'S' and one 'E')
//   - Four-directional adjacency without bounds checks on the hot path
//   - Lookup of every cell at a given elevation
package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input row accepted by Parse.
const maxLineBytes = 1 << 20

// Grid is an elevation map surrounded by a ring of Sentinel cells.
// It is immutable once built and safe for concurrent readers.
type Grid struct {
	width, height int
	stride        int         // width + 2
	cells         []Elevation // (height+2)*stride, row-major, border included
	start, end    Cell
	offsets       [4]int // up, down, left, right as padded-index deltas
}

// Parse reads one grid row per line from r. Trailing carriage returns and
// trailing blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return New(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// New builds a Grid from pre-split rows.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidElevation,
// ErrDuplicateMarker, ErrMissingStart or ErrMissingEnd on malformed input.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	stride := w + 2
	g := &Grid{
		width:   w,
		height:  h,
		stride:  stride,
		cells:   make([]Elevation, (h+2)*stride),
		start:   Cell{-1, -1},
		end:     Cell{-1, -1},
		offsets: [4]int{-stride, stride, -1, 1},
	}
	for i := range g.cells {
		g.cells[i] = Sentinel
	}

	for r, row := range rows {
		for c := 0; c < w; c++ {
			b := row[c]
			here := Cell{r, c}
			switch {
			case b == StartMarker:
				if g.start.Row >= 0 {
					return nil, fmt.Errorf("%w: 'S' at %v and %v", ErrDuplicateMarker, g.start, here)
				}
				g.start = here
				b = byte(Lowest)
			case b == EndMarker:
				if g.end.Row >= 0 {
					return nil, fmt.Errorf("%w: 'E' at %v and %v", ErrDuplicateMarker, g.end, here)
				}
				g.end = here
				b = byte(Highest)
			case !Elevation(b).Valid():
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidElevation, b, here)
			}
			g.cells[g.Index(here)] = Elevation(b)
		}
	}
	if g.start.Row < 0 {
		return nil, ErrMissingStart
	}
	if g.end.Row < 0 {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// Width is the number of real columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of real rows.
func (g *Grid) Height() int { return g.height }

// Cells is the number of real cells, Width×Height.
func (g *Grid) Cells() int { return g.width * g.height }

// Start is the cell that carried the 'S' marker.
func (g *Grid) Start() Cell { return g.start }

// End is the cell that carried the 'E' marker.
func (g *Grid) End() Cell { return g.end }

// InBounds reports whether c is a real (non-border) cell.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Elevation returns the elevation at c. It panics if c is out of bounds.
func (g *Grid) Elevation(c Cell) Elevation {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("heightmap: cell %v outside %dx%d grid", c, g.width, g.height))
	}
	return g.cells[g.Index(c)]
}

// Neighbors returns the real cells above, below, left and right of c,
// in that order. Border cells are left out.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, n := range [4]Cell{{c.Row - 1, c.Col}, {c.Row + 1, c.Col}, {c.Row, c.Col - 1}, {c.Row, c.Col + 1}} {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// CellsWithElevation lists every real cell at elevation v in row-major order.
// The start cell is included when v == Lowest.
// Complexity: O(W×H).
func (g *Grid) CellsWithElevation(v Elevation) []Cell {
	var out []Cell
	for r := 0; r < g.height; r++ {
		base := (r+1)*g.stride + 1
		for c := 0; c < g.width; c++ {
			if g.cells[base+c] == v {
				out = append(out, Cell{r, c})
			}
		}
	}
	return out
}

// String renders the normalized grid, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		base := (r+1)*g.stride + 1
		for c := 0; c < g.width; c++ {
			sb.WriteByte(byte(g.cells[base+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

//----------------------------------------------------------------------------//
// Padded-index access for search loops
//----------------------------------------------------------------------------//

// Len is the size of the padded table, border included.
func (g *Grid) Len() int { return len(g.cells) }

// Stride is the padded row length, Width+2.
func (g *Grid) Stride() int { return g.stride }

// Offsets returns the padded-index deltas of the four neighbors
// (up, down, left, right). Applied to a real cell they never leave the table.
func (g *Grid) Offsets() [4]int { return g.offsets }

// Index maps c to its padded row-major index: (Row+1)*Stride + Col+1.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return (c.Row+1)*g.stride + c.Col + 1
}

// CellAt converts a padded index back to a Cell. Border indices map to
// a Row or Col of -1, Height or Width.
func (g *Grid) CellAt(idx int) Cell {
	return Cell{idx/g.stride - 1, idx%g.stride - 1}
}

// At returns the elevation stored at a padded index, Sentinel on the border.
func (g *Grid) At(idx int) Elevation { return g.cells[idx] }

// IsBorder reports whether a padded index lies on the sentinel ring.
func (g *Grid) IsBorder(idx int) bool {
	return !g.InBounds(g.CellAt(idx))
}

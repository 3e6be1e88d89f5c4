package climb

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ShortestPathFromAny returns the minimum, over every cell in sources, of the
// shortest route from that cell to target.
//
// It runs a single search outward from target using the reversed step rule
// and stops at the first source it settles, so the cost is one query no
// matter how many sources are given. Result.Path, when requested, starts at
// the winning source. An empty sources slice yields an unreachable result.
func ShortestPathFromAny(g *heightmap.Grid, sources []heightmap.Cell, target heightmap.Cell, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if err = checkCell(g, "target", target); err != nil {
		return nil, err
	}
	goal := make([]bool, g.Len())
	for i, s := range sources {
		if err = checkCell(g, fmt.Sprintf("source[%d]", i), s); err != nil {
			return nil, err
		}
		goal[g.Index(s)] = true
	}
	if len(sources) == 0 {
		return &Result{}, nil
	}

	r := newRunner(g, cfg, true)
	r.seed(g.Index(target))
	best, found := r.run(func(idx int) bool { return goal[idx] })

	res := &Result{Visited: r.settled}
	if found {
		res.Steps = r.dist[best]
		res.Reachable = true
		if cfg.ReturnPath {
			res.Path = r.pathTo(best)
		}
	}
	return res, nil
}

// ShortestPathFromEach answers the same question as ShortestPathFromAny by
// running ShortestPath once per source and keeping the minimum. It costs one
// full query per source; prefer ShortestPathFromAny outside of cross-checks.
// Visited is summed over all runs.
func ShortestPathFromEach(g *heightmap.Grid, sources []heightmap.Cell, target heightmap.Cell, opts ...Option) (*Result, error) {
	if _, err := buildOptions(g, opts); err != nil {
		return nil, err
	}
	if err := checkCell(g, "target", target); err != nil {
		return nil, err
	}

	best := &Result{}
	visited := 0
	for _, s := range sources {
		res, err := ShortestPath(g, s, target, opts...)
		if err != nil {
			return nil, err
		}
		visited += res.Visited
		if res.Reachable && (!best.Reachable || res.Steps < best.Steps) {
			best = res
		}
	}
	best.Visited = visited
	return best, nil
}

// Distances is the full field of shortest route lengths from every cell to
// one target, produced by DistancesTo.
type Distances struct {
	g      *heightmap.Grid
	target heightmap.Cell
	dist   []int
	prev   []int
}

// DistancesTo runs the reversed search from target to exhaustion.
// MaxSteps and Strategy are honoured; ReturnPath enables Distances.PathFrom.
func DistancesTo(g *heightmap.Grid, target heightmap.Cell, opts ...Option) (*Distances, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if err = checkCell(g, "target", target); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, true)
	r.seed(g.Index(target))
	r.run(nil)
	return &Distances{g: g, target: target, dist: r.dist, prev: r.prev}, nil
}

// Target is the cell every distance is measured to.
func (d *Distances) Target() heightmap.Cell { return d.target }

// At returns the number of steps from c to the target and whether c can
// reach it at all. Cells outside the grid are unreachable.
func (d *Distances) At(c heightmap.Cell) (int, bool) {
	if !d.g.InBounds(c) {
		return 0, false
	}
	v := d.dist[d.g.Index(c)]
	return v, v != Unreachable
}

// Min returns the closest of cells and its distance. ok is false when none
// of them reaches the target.
func (d *Distances) Min(cells []heightmap.Cell) (best heightmap.Cell, steps int, ok bool) {
	steps = Unreachable
	for _, c := range cells {
		if v, reach := d.At(c); reach && v < steps {
			best, steps, ok = c, v, true
		}
	}
	if !ok {
		steps = 0
	}
	return best, steps, ok
}

// PathFrom walks from c to the target along one shortest route.
// It returns nil if c is unreachable or the field was built without
// WithReturnPath.
func (d *Distances) PathFrom(c heightmap.Cell) []heightmap.Cell {
	if d.prev == nil {
		return nil
	}
	if _, ok := d.At(c); !ok {
		return nil
	}
	var path []heightmap.Cell
	for at := d.g.Index(c); at >= 0; at = d.prev[at] {
		path = append(path, d.g.CellAt(at))
	}
	return path
}

// Dump writes the field as a fixed-width table, one grid row per line.
// Unreachable cells are shown as '.'.
func (d *Distances) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < d.g.Height(); r++ {
		for c := 0; c < d.g.Width(); c++ {
			if v, ok := d.At(heightmap.Cell{Row: r, Col: c}); ok {
				fmt.Fprintf(bw, "%4d", v)
			} else {
				fmt.Fprintf(bw, "%4s", ".")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

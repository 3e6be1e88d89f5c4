// Package climb implements shortest-path search over a heightmap.Grid under
// the climbing step rule: a move may descend any amount but climb at most one
// elevation level.
//
// Every step costs one, so the search is Dijkstra with unit weights. Cells are
// addressed by their padded index in the grid's table; the sentinel border is
// marked settled before the loop starts, so the four neighbor offsets are
// applied without bounds checks and the border is never visited.
//
// Complexity:
//
//   - StrategyHeap:  O(N log N) time, N = W×H.
//   - StrategyQueue: O(N) time.
//   - StrategyScan:  O(N²) time.
//   - Space: O(N) per query for distances, settled flags and (optionally)
//     predecessors. Nothing is shared between queries.
package climb

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ShortestPath returns the minimum number of legal steps from source to
// target. If target cannot be reached, Result.Reachable is false.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. every Option must be valid (ErrOptionViolation).
//  3. source and target must be real cells (ErrOutOfBounds).
//
// When source == target the answer is 0 and no search runs.
func ShortestPath(g *heightmap.Grid, source, target heightmap.Cell, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if err = checkCell(g, "source", source); err != nil {
		return nil, err
	}
	if err = checkCell(g, "target", target); err != nil {
		return nil, err
	}

	if source == target {
		res := &Result{Steps: 0, Reachable: true}
		if cfg.ReturnPath {
			res.Path = []heightmap.Cell{source}
		}
		return res, nil
	}

	r := newRunner(g, cfg, false)
	r.seed(g.Index(source))
	t := g.Index(target)
	_, found := r.run(func(idx int) bool { return idx == t })

	res := &Result{Visited: r.settled}
	if found {
		res.Steps = r.dist[t]
		res.Reachable = true
		if cfg.ReturnPath {
			res.Path = r.pathTo(t)
		}
	}
	return res, nil
}

// buildOptions applies opts over DefaultOptions and validates the grid.
func buildOptions(g *heightmap.Grid, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, ErrNilGrid
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	return cfg, nil
}

func checkCell(g *heightmap.Grid, role string, c heightmap.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %v not in %dx%d grid", ErrOutOfBounds, role, c, g.Width(), g.Height())
	}
	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *heightmap.Grid
	opts    Options
	reverse bool   // walk edges backwards: from n onto cur must be legal
	dist    []int  // padded index → best known steps from the seed(s)
	prev    []int  // padded index → predecessor index, nil unless ReturnPath
	visited []bool // padded index → distance is final
	front   frontier
	settled int
}

func newRunner(g *heightmap.Grid, cfg Options, reverse bool) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		opts:    cfg,
		reverse: reverse,
		dist:    make([]int, n),
		visited: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
		// The reversed rule would let a real cell step down from the sentinel.
		r.visited[i] = g.IsBorder(i)
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}
	r.front = newFrontier(cfg.Strategy, r.dist, r.visited)
	return r
}

// seed places a source at distance zero.
func (r *runner) seed(idx int) {
	r.dist[idx] = 0
	r.front.push(idx, 0)
}

// run settles cells in distance order until goal accepts one, the frontier
// runs dry, or the next cell lies beyond MaxSteps. A nil goal explores every
// reachable cell. Returns the settled goal index and whether one was found.
func (r *runner) run(goal func(idx int) bool) (int, bool) {
	for {
		idx, ok := r.front.pop()
		if !ok {
			return -1, false
		}
		if r.visited[idx] {
			continue // stale entry
		}
		d := r.dist[idx]
		if d > r.opts.MaxSteps {
			return -1, false
		}

		r.visited[idx] = true
		r.settled++
		r.opts.OnVisit(r.g.CellAt(idx), d)

		if goal != nil && goal(idx) {
			return idx, true
		}
		r.relax(idx)
	}
}

// relax offers dist[cur]+1 to every unsettled neighbor the step rule admits.
func (r *runner) relax(cur int) {
	nd := r.dist[cur] + 1
	if nd > r.opts.MaxSteps {
		return
	}
	here := r.g.At(cur)
	for _, off := range r.g.Offsets() {
		n := cur + off
		if r.visited[n] {
			continue
		}
		there := r.g.At(n)
		if r.reverse {
			if !there.CanStep(here) {
				continue
			}
		} else if !here.CanStep(there) {
			continue
		}
		if nd >= r.dist[n] {
			continue
		}
		r.dist[n] = nd
		if r.prev != nil {
			r.prev[n] = cur
		}
		r.front.push(n, nd)
	}
}

// pathTo follows predecessors from idx back to a seed. Forward searches are
// returned seed-first; reverse searches already run from idx toward the seed,
// which is the walking direction.
func (r *runner) pathTo(idx int) []heightmap.Cell {
	var path []heightmap.Cell
	for at := idx; at >= 0; at = r.prev[at] {
		path = append(path, r.g.CellAt(at))
	}
	if !r.reverse {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path
}

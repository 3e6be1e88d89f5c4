// Package climb defines options, results and sentinel errors for
// step-constrained shortest-path queries over a heightmap.Grid.
//
// Options:
//
//	– Strategy:   frontier used to pick the next cell (heap, queue or scan).
//	– ReturnPath: if true, Result.Path holds one shortest route.
//	– MaxSteps:   optional cap; cells farther than this are never settled.
//	– OnVisit:    hook called each time a cell's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrOutOfBounds     if a source or target cell lies outside the grid.
//	– ErrOptionViolation if an option carries an invalid value.
package climb

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed in.
	ErrNilGrid = errors.New("climb: grid is nil")

	// ErrOutOfBounds indicates that a source or target is not a real grid cell.
	ErrOutOfBounds = errors.New("climb: cell outside grid")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")
)

// Unreachable is the distance recorded for cells no search has reached.
const Unreachable = math.MaxInt

// Strategy selects how the next unsettled cell is chosen.
// Every strategy yields the same distances; they differ only in cost.
type Strategy int

const (
	// StrategyHeap keeps the frontier in a binary min-heap (Dijkstra).
	StrategyHeap Strategy = iota
	// StrategyQueue keeps the frontier in a FIFO queue (BFS). Valid because
	// every step costs one.
	StrategyQueue
	// StrategyScan scans the whole table for the closest unsettled cell on
	// every iteration. O((W×H)²); kept as a reference oracle.
	StrategyScan
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyQueue:
		return "queue"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap", "queue" or "scan" to a Strategy.
// The empty string selects StrategyHeap.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "heap":
		return StrategyHeap, nil
	case "queue":
		return StrategyQueue, nil
	case "scan":
		return StrategyScan, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Options configures a search run.
type Options struct {
	Strategy   Strategy
	ReturnPath bool
	MaxSteps   int
	OnVisit    func(c heightmap.Cell, steps int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns:
//   - Strategy:   StrategyHeap
//   - ReturnPath: false
//   - MaxSteps:   Unreachable (no cap)
//   - OnVisit:    no-op
func DefaultOptions() Options {
	return Options{
		Strategy:   StrategyHeap,
		ReturnPath: false,
		MaxSteps:   Unreachable,
		OnVisit:    func(heightmap.Cell, int) {},
	}
}

// WithStrategy picks the frontier implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < StrategyHeap || s > StrategyScan {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithReturnPath records predecessors so Result.Path can be rebuilt.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxSteps stops settling cells farther than n steps away.
// A target beyond the cap is reported as unreachable.
//
//	n >= 0: cap at n
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnVisit registers a callback run when a cell's distance becomes final.
func WithOnVisit(fn func(c heightmap.Cell, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of a query.
//
//   - Steps:     length of the shortest route; meaningful only if Reachable.
//   - Reachable: false when no legal route exists (not an error).
//   - Path:      cells from the chosen source to the target inclusive,
//     set only with WithReturnPath and when Reachable.
//   - Visited:   number of cells settled while answering.
type Result struct {
	Steps     int
	Reachable bool
	Path      []heightmap.Cell
	Visited   int
}

// String renders the step count, or "none" when unreachable.
func (r *Result) String() string {
	if r == nil || !r.Reachable {
		return "none"
	}
	return fmt.Sprintf("%d", r.Steps)
}

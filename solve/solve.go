// Package solve runs both hill-climbing queries for one grid and reports the
// answers in a form shared by the command-line driver and the HTTP service.
package solve

import (
	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Answer holds both puzzle answers for one grid.
//
//   - Steps/Reachable:         start → end.
//   - BestSteps/BestReachable: best cell at the lowest elevation → end.
type Answer struct {
	Steps         int  `json:"steps"`
	Reachable     bool `json:"reachable"`
	BestSteps     int  `json:"bestSteps"`
	BestReachable bool `json:"bestReachable"`
	Width         int  `json:"width"`
	Height        int  `json:"height"`
	NodesVisited  int  `json:"nodesVisited"`
}

// Run runs the single-source query from the grid's start and the
// multi-source query from every cell at elevation lowest, both to the end.
func Run(g *heightmap.Grid, s climb.Strategy, lowest heightmap.Elevation) (Answer, error) {
	single, err := climb.ShortestPath(g, g.Start(), g.End(), climb.WithStrategy(s))
	if err != nil {
		return Answer{}, err
	}
	best, err := climb.ShortestPathFromAny(g, g.CellsWithElevation(lowest), g.End(), climb.WithStrategy(s))
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Steps:         single.Steps,
		Reachable:     single.Reachable,
		BestSteps:     best.Steps,
		BestReachable: best.Reachable,
		Width:         g.Width(),
		Height:        g.Height(),
		NodesVisited:  single.Visited + best.Visited,
	}, nil
}

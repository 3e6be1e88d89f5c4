package climb_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

var strategies = []climb.Strategy{climb.StrategyHeap, climb.StrategyQueue, climb.StrategyScan}

func mustParse(t testing.TB, s string) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.ParseString(s)
	require.NoError(t, err)
	return g
}

// randomGrid builds an h×w grid with elevations drawn from the first span
// letters, S and E placed on distinct random cells.
func randomGrid(t testing.TB, rng *rand.Rand, h, w, span int) *heightmap.Grid {
	t.Helper()
	rows := make([][]byte, h)
	for r := range rows {
		rows[r] = make([]byte, w)
		for c := range rows[r] {
			rows[r][c] = byte('a' + rng.Intn(span))
		}
	}
	s := rng.Intn(h * w)
	e := rng.Intn(h*w - 1)
	if e >= s {
		e++
	}
	rows[s/w][s%w] = heightmap.StartMarker
	rows[e/w][e%w] = heightmap.EndMarker

	lines := make([]string, h)
	for r := range rows {
		lines[r] = string(rows[r])
	}
	g, err := heightmap.New(lines)
	require.NoError(t, err)
	return g
}

func randomCell(rng *rand.Rand, g *heightmap.Grid) heightmap.Cell {
	return heightmap.Cell{Row: rng.Intn(g.Height()), Col: rng.Intn(g.Width())}
}

// bruteForce is an independent BFS over the public Grid API.
func bruteForce(g *heightmap.Grid, src, dst heightmap.Cell) (int, bool) {
	depth := map[heightmap.Cell]int{src: 0}
	queue := []heightmap.Cell{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			return depth[cur], true
		}
		for _, n := range g.Neighbors(cur) {
			if _, seen := depth[n]; seen {
				continue
			}
			if !g.Elevation(cur).CanStep(g.Elevation(n)) {
				continue
			}
			depth[n] = depth[cur] + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}

// requireValidPath checks that path runs from src to dst in steps legal moves.
func requireValidPath(t *testing.T, g *heightmap.Grid, path []heightmap.Cell, src, dst heightmap.Cell, steps int) {
	t.Helper()
	require.Len(t, path, steps+1)
	require.Equal(t, src, path[0])
	require.Equal(t, dst, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		require.Contains(t, g.Neighbors(a), b, "step %d: %v -> %v not adjacent", i, a, b)
		require.True(t, g.Elevation(a).CanStep(g.Elevation(b)), "step %d: %v -> %v climbs too much", i, a, b)
	}
}

package climb_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

//----------------------------------------------------------------------------//
// ShortestPathFromAny / ShortestPathFromEach
//----------------------------------------------------------------------------//

func TestShortestPathFromAny_Sample(t *testing.T) {
	g := mustParse(t, sample)
	lows := g.CellsWithElevation(heightmap.Lowest)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := climb.ShortestPathFromAny(g, lows, g.End(), climb.WithStrategy(s), climb.WithReturnPath())
			require.NoError(t, err)
			require.True(t, res.Reachable)
			assert.Equal(t, 29, res.Steps)
			require.NotEmpty(t, res.Path)
			assert.Contains(t, lows, res.Path[0])
			requireValidPath(t, g, res.Path, res.Path[0], g.End(), res.Steps)

			each, err := climb.ShortestPathFromEach(g, lows, g.End(), climb.WithStrategy(s), climb.WithReturnPath())
			require.NoError(t, err)
			require.True(t, each.Reachable)
			assert.Equal(t, 29, each.Steps)
			requireValidPath(t, g, each.Path, each.Path[0], g.End(), each.Steps)
			assert.Greater(t, each.Visited, res.Visited)
		})
	}
}

func TestShortestPathFromAny_EmptySources(t *testing.T) {
	g := mustParse(t, sample)
	res, err := climb.ShortestPathFromAny(g, nil, g.End())
	require.NoError(t, err)
	assert.False(t, res.Reachable)

	res, err = climb.ShortestPathFromEach(g, nil, g.End())
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

func TestShortestPathFromAny_TargetIsSource(t *testing.T) {
	g := mustParse(t, sample)
	res, err := climb.ShortestPathFromAny(g, []heightmap.Cell{g.Start(), g.End()}, g.End(), climb.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Reachable)
	assert.Zero(t, res.Steps)
	assert.Equal(t, []heightmap.Cell{g.End()}, res.Path)
}

func TestShortestPathFromAny_Validation(t *testing.T) {
	g := mustParse(t, sample)
	_, err := climb.ShortestPathFromAny(nil, nil, heightmap.Cell{})
	require.ErrorIs(t, err, climb.ErrNilGrid)

	_, err = climb.ShortestPathFromAny(g, []heightmap.Cell{{Row: 0, Col: 8}}, g.End())
	require.ErrorIs(t, err, climb.ErrOutOfBounds)
	_, err = climb.ShortestPathFromEach(g, []heightmap.Cell{{Row: 0, Col: 8}}, g.End())
	require.ErrorIs(t, err, climb.ErrOutOfBounds)

	_, err = climb.ShortestPathFromAny(g, nil, heightmap.Cell{Row: 9, Col: 9})
	require.ErrorIs(t, err, climb.ErrOutOfBounds)
	_, err = climb.ShortestPathFromEach(g, nil, heightmap.Cell{Row: 9, Col: 9})
	require.ErrorIs(t, err, climb.ErrOutOfBounds)

	_, err = climb.ShortestPathFromEach(g, nil, g.End(), climb.WithMaxSteps(-3))
	require.ErrorIs(t, err, climb.ErrOptionViolation)
}

// TestShortestPathFromAny_Unreachable: no lowest cell can cross the wall.
func TestShortestPathFromAny_Unreachable(t *testing.T) {
	g := mustParse(t, "Sacdd\naacdd\naacdE\n")
	target := heightmap.Cell{Row: 0, Col: 4}
	lows := g.CellsWithElevation(heightmap.Lowest)

	res, err := climb.ShortestPathFromAny(g, lows, target)
	require.NoError(t, err)
	assert.False(t, res.Reachable)

	res, err = climb.ShortestPathFromEach(g, lows, target)
	require.NoError(t, err)
	assert.False(t, res.Reachable)
}

// TestShortestPathFromAny_Equivalence checks reverse search against the
// per-source formulation and against the brute-force oracle.
func TestShortestPathFromAny_Equivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for i := 0; i < 150; i++ {
		g := randomGrid(t, rng, 1+rng.Intn(7), 2+rng.Intn(7), 2+rng.Intn(4))
		target := randomCell(rng, g)
		var sources []heightmap.Cell
		if i%2 == 0 {
			sources = g.CellsWithElevation(heightmap.Lowest)
		} else {
			for n := rng.Intn(5); n > 0; n-- {
				sources = append(sources, randomCell(rng, g))
			}
		}

		want, wantOK := 0, false
		for _, s := range sources {
			if d, ok := bruteForce(g, s, target); ok && (!wantOK || d < want) {
				want, wantOK = d, true
			}
		}

		for _, s := range strategies {
			anyRes, err := climb.ShortestPathFromAny(g, sources, target, climb.WithStrategy(s))
			require.NoError(t, err)
			eachRes, err := climb.ShortestPathFromEach(g, sources, target, climb.WithStrategy(s))
			require.NoError(t, err)

			require.Equal(t, wantOK, anyRes.Reachable, "grid %d %s\n%s", i, s, g)
			require.Equal(t, wantOK, eachRes.Reachable, "grid %d %s\n%s", i, s, g)
			if wantOK {
				require.Equal(t, want, anyRes.Steps, "grid %d %s\n%s", i, s, g)
				require.Equal(t, want, eachRes.Steps, "grid %d %s\n%s", i, s, g)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// DistancesTo
//----------------------------------------------------------------------------//

func TestDistancesTo_Sample(t *testing.T) {
	g := mustParse(t, sample)
	d, err := climb.DistancesTo(g, g.End(), climb.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, g.End(), d.Target())

	steps, ok := d.At(g.Start())
	require.True(t, ok)
	assert.Equal(t, 31, steps)

	steps, ok = d.At(g.End())
	require.True(t, ok)
	assert.Zero(t, steps)

	_, ok = d.At(heightmap.Cell{Row: -1, Col: 3})
	assert.False(t, ok)

	best, steps, ok := d.Min(g.CellsWithElevation(heightmap.Lowest))
	require.True(t, ok)
	assert.Equal(t, 29, steps)
	requireValidPath(t, g, d.PathFrom(best), best, g.End(), 29)

	_, _, ok = d.Min(nil)
	assert.False(t, ok)
}

// TestDistancesTo_MatchesForward compares every cell of the field with a
// forward query from that cell.
func TestDistancesTo_MatchesForward(t *testing.T) {
	g := mustParse(t, sample)
	target := heightmap.Cell{Row: 1, Col: 3}
	d, err := climb.DistancesTo(g, target, climb.WithStrategy(climb.StrategyQueue))
	require.NoError(t, err)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := heightmap.Cell{Row: r, Col: c}
			res, err := climb.ShortestPath(g, cell, target)
			require.NoError(t, err)
			steps, ok := d.At(cell)
			require.Equal(t, res.Reachable, ok, "cell %v", cell)
			if ok {
				require.Equal(t, res.Steps, steps, "cell %v", cell)
			}
		}
	}
	assert.Nil(t, d.PathFrom(g.Start()), "no predecessors without WithReturnPath")
}

func TestDistancesTo_MaxSteps(t *testing.T) {
	g := mustParse(t, sample)
	d, err := climb.DistancesTo(g, g.End(), climb.WithMaxSteps(5))
	require.NoError(t, err)
	_, ok := d.At(g.Start())
	assert.False(t, ok)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if v, ok := d.At(heightmap.Cell{Row: r, Col: c}); ok {
				assert.LessOrEqual(t, v, 5)
			}
		}
	}
}

func TestDistances_Dump(t *testing.T) {
	g := mustParse(t, "SbcE\naaaz\n")
	d, err := climb.DistancesTo(g, heightmap.Cell{Row: 0, Col: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Dump(&buf))
	want := "   2   1   0   1\n" +
		"   3   2   3   2\n"
	assert.Equal(t, want, buf.String())

	walled := mustParse(t, "SE\n")
	d, err = climb.DistancesTo(walled, walled.End())
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, d.Dump(&buf))
	assert.Equal(t, "   .   0", strings.TrimRight(buf.String(), "\n"))
}

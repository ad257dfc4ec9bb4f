package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

const (
	// cityMap is the 13×13 reference grid: 102 under basic(3), 94 under
	// windowed(4,10).
	cityMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

	// corridorMap punishes every shortcut through the 9s, so the windowed
	// mover must commit to long runs along the cheap edge: 71 under
	// windowed(4,10).
	corridorMap = `111111111111
999999999991
999999999991
999999999991
999999999991
`
)

var (
	basicPolicy    = dijkstra.Basic{MaxRun: 3}
	windowedPolicy = dijkstra.Windowed{MinRun: 4, MaxRun: 10}
)

// mustGrid parses text or fails the test.
func mustGrid(tb testing.TB, text string) *grid.Grid {
	tb.Helper()
	g, err := grid.ParseString(text)
	require.NoError(tb, err)

	return g
}

// uniformGrid builds a rows×cols grid where every cell costs v.
func uniformGrid(tb testing.TB, rows, cols, v int) *grid.Grid {
	tb.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = v
		}
	}
	g, err := grid.New(values)
	require.NoError(tb, err)

	return g
}

// runWindow returns the (min, max) run window a policy enforces; basic has
// no minimum.
func runWindow(p dijkstra.Policy) (minRun, maxRun int) {
	switch v := p.(type) {
	case dijkstra.Basic:
		return 0, v.MaxRun
	case dijkstra.Windowed:
		return v.MinRun, v.MaxRun
	}
	panic("unknown policy")
}

// checkPath asserts that path is a legal, contiguous walk for policy p on g
// whose entry costs add up to cost.
func checkPath(t *testing.T, g *grid.Grid, p dijkstra.Policy, path []dijkstra.State, cost int64) {
	t.Helper()
	require.NotEmpty(t, path)
	minRun, maxRun := runWindow(p)

	seed := path[0]
	require.Equal(t, 0, seed.Run, "path must begin at a seed")

	var sum int64
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		require.Equal(t, prev.Pos.Step(cur.Heading), cur.Pos, "step %d is not adjacent", i)

		if cur.Heading == prev.Heading {
			require.Equal(t, prev.Run+1, cur.Run, "step %d straight run", i)
		} else {
			require.Equal(t, 1, cur.Run, "step %d turn must reset run", i)
			require.NotEqual(t, prev.Heading.Left().Left(), cur.Heading, "step %d reverses", i)
			require.GreaterOrEqual(t, prev.Run, minRun, "step %d turns before completing the minimum run", i)
		}
		require.LessOrEqual(t, cur.Run, maxRun, "step %d exceeds the run cap", i)

		v, ok := g.Cost(cur.Pos.Row, cur.Pos.Col)
		require.True(t, ok)
		sum += int64(v)
	}
	require.GreaterOrEqual(t, path[len(path)-1].Run, minRun, "final run shorter than minimum")
	require.Equal(t, cost, sum, "path cost mismatch")
}

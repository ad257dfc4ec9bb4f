package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// headingsOf collects successor (heading, run) pairs for compact assertions.
func headingsOf(states []dijkstra.State) map[dijkstra.Heading]int {
	out := make(map[dijkstra.Heading]int, len(states))
	for _, s := range states {
		out[s.Heading] = s.Run
	}

	return out
}

func TestBasic_Moves(t *testing.T) {
	p := dijkstra.Basic{MaxRun: 3}
	from := dijkstra.State{Pos: dijkstra.Position{Row: 5, Col: 5}, Heading: dijkstra.East}

	for run := 0; run < 3; run++ {
		from.Run = run
		got := headingsOf(p.Moves(from, nil))
		assert.Equal(t, map[dijkstra.Heading]int{
			dijkstra.North: 1,
			dijkstra.South: 1,
			dijkstra.East:  run + 1,
		}, got, "run=%d", run)
	}

	from.Run = 3
	got := headingsOf(p.Moves(from, nil))
	assert.Equal(t, map[dijkstra.Heading]int{dijkstra.North: 1, dijkstra.South: 1}, got)
}

func TestWindowed_Moves(t *testing.T) {
	p := dijkstra.Windowed{MinRun: 4, MaxRun: 10}
	from := dijkstra.State{Pos: dijkstra.Position{Row: 20, Col: 20}, Heading: dijkstra.South}

	for run := 0; run <= 10; run++ {
		from.Run = run
		got := headingsOf(p.Moves(from, nil))
		switch {
		case run < 4:
			assert.Equal(t, map[dijkstra.Heading]int{dijkstra.South: run + 1}, got, "run=%d", run)
		case run < 10:
			assert.Equal(t, map[dijkstra.Heading]int{
				dijkstra.East:  1,
				dijkstra.West:  1,
				dijkstra.South: run + 1,
			}, got, "run=%d", run)
		default:
			assert.Equal(t, map[dijkstra.Heading]int{dijkstra.East: 1, dijkstra.West: 1}, got, "run=%d", run)
		}
	}
}

func TestMoves_AppendsToDst(t *testing.T) {
	prefix := []dijkstra.State{{Run: 99}}
	out := dijkstra.Basic{MaxRun: 1}.Moves(dijkstra.State{Heading: dijkstra.North, Run: 1}, prefix)
	require.Len(t, out, 3)
	assert.Equal(t, 99, out[0].Run)
}

func TestPolicy_Validate(t *testing.T) {
	cases := []struct {
		name string
		p    dijkstra.Policy
		ok   bool
	}{
		{"BasicDefault", dijkstra.Basic{MaxRun: 3}, true},
		{"BasicOne", dijkstra.Basic{MaxRun: 1}, true},
		{"BasicZero", dijkstra.Basic{MaxRun: 0}, false},
		{"WindowedDefault", dijkstra.Windowed{MinRun: 4, MaxRun: 10}, true},
		{"WindowedEqual", dijkstra.Windowed{MinRun: 5, MaxRun: 5}, true},
		{"WindowedZeroMin", dijkstra.Windowed{MinRun: 0, MaxRun: 2}, true},
		{"WindowedInverted", dijkstra.Windowed{MinRun: 5, MaxRun: 4}, false},
		{"WindowedNegativeMin", dijkstra.Windowed{MinRun: -1, MaxRun: 4}, false},
		{"WindowedZeroMax", dijkstra.Windowed{MinRun: 0, MaxRun: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, dijkstra.ErrBadRunWindow), "got %v", err)
		})
	}
}

func TestGoal_Reached(t *testing.T) {
	target := dijkstra.Position{Row: 2, Col: 3}
	at := func(run int) dijkstra.State {
		return dijkstra.State{Pos: target, Heading: dijkstra.East, Run: run}
	}

	basic := dijkstra.Basic{MaxRun: 3}.Goal(target)
	assert.True(t, basic.Reached(at(0)))
	assert.True(t, basic.Reached(at(1)))
	assert.False(t, basic.Reached(dijkstra.State{Pos: dijkstra.Position{Row: 2, Col: 2}, Run: 1}))

	windowed := dijkstra.Windowed{MinRun: 4, MaxRun: 10}.Goal(target)
	assert.False(t, windowed.Reached(at(3)))
	assert.True(t, windowed.Reached(at(4)))
	assert.True(t, windowed.Reached(at(10)))
}

func TestSuccessors_FiltersOffGrid(t *testing.T) {
	g, err := grid.New([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)

	// From the top-left corner facing East: left would leave through the top.
	from := dijkstra.State{Heading: dijkstra.East}
	got := dijkstra.Successors(dijkstra.Basic{MaxRun: 3}, g, from, nil)
	assert.ElementsMatch(t, []dijkstra.State{
		{Pos: dijkstra.Position{Row: 1, Col: 0}, Heading: dijkstra.South, Run: 1},
		{Pos: dijkstra.Position{Row: 0, Col: 1}, Heading: dijkstra.East, Run: 1},
	}, got)

	// Windowed below MinRun facing a wall has no successors at all.
	from = dijkstra.State{Pos: dijkstra.Position{Row: 0, Col: 1}, Heading: dijkstra.East, Run: 1}
	got = dijkstra.Successors(dijkstra.Windowed{MinRun: 4, MaxRun: 10}, g, from, nil)
	assert.Empty(t, got)
}

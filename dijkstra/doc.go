// Package dijkstra finds minimum-cost traversals of a cost grid under
// movement dynamics: a mover carries a heading and a run-length (how many
// consecutive steps it has taken in that heading), and a Policy decides which
// turns and straight moves are legal from each such state.
//
// Overview:
//
//   - The grid position alone is not a sufficient search state. Search works
//     over the augmented state space (row, col, heading, run-length), whose
//     size is bounded by rows × cols × 4 × (MaxRun+1).
//   - Entering a cell costs that cell's value; the start cell is free.
//   - Two policies share the engine:
//     Basic{MaxRun}          – turn left, turn right, or go straight while Run < MaxRun.
//     Windowed{MinRun,MaxRun} – straight only while Run < MinRun, any move up to
//     MaxRun, turns only at MaxRun; the goal also requires Run ≥ MinRun.
//   - Search seeds the start cell heading East and South with Run 0, so the
//     first move is unconstrained by MinRun.
//
// Algorithm:
//
//   - A min-heap frontier keyed by cumulative cost (ties broken by row, col,
//     heading, run) and a flat distance table over states.
//   - The first popped state satisfying the Goal is optimal, since every edge
//     cost is non-negative.
//   - “Lazy decrease-key”: improved states are pushed again, and an entry
//     whose cost exceeds the table's best is discarded when popped.
//
// Performance and complexity:
//
//   - Let S = rows × cols × 4 × (MaxRun+1) states and E ≤ 3·S transitions.
//   - Time:  O((S + E) log E)
//   - Space: O(S) for the distance table, O(E) worst-case heap entries.
//
// Outcomes:
//
//   - Result.Cost is the minimal cost, or Unreachable when no policy-legal
//     path reaches the goal. “No path” is an answer, not an error.
//   - Errors are reserved for invalid input and configuration:
//     ErrNilGrid, ErrEmptyGrid, ErrNilPolicy, ErrBadRunWindow,
//     ErrStartOutOfBounds, ErrTargetOutOfBounds, ErrNoSeeds, ErrBadHeading,
//     ErrNegativeCost.
//   - WithMaxCost panics with ErrBadMaxCost on a negative cap.
//
// Thread safety:
//
//   - Each Search call owns its frontier and distance table. The Surface is
//     only read, so concurrent searches over one grid need no locking.
//
// Example:
//
//	g, _ := grid.ParseString("2413\n3215\n3255\n")
//	res, err := dijkstra.Search(g, dijkstra.Basic{MaxRun: 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Reachable() {
//	    fmt.Println(res.Cost)
//	}
package dijkstra

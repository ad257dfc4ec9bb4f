// Package solver answers the two standard questions about a cost grid:
// the cheapest top-left to bottom-right traversal under the basic run-cap
// policy and under the windowed policy.
//
// What:
//
//   - Solve runs both searches over one *grid.Grid concurrently. The grid is
//     read-only and each search owns its own frontier and distance table,
//     so no locking is involved.
//   - SolveAll solves many named grids with a bounded number of grids in
//     flight (WithParallel).
//   - Every search is logged as one structured slog record.
//
// Errors:
//
//   - Configuration errors (invalid run windows, nil grids) fail fast.
//   - An unreachable goal is reported through Outcome.Reachable, never as an
//     error.
//   - A cancelled context stops work that has not started yet; a search that
//     is already running completes, since the state space is finite.
package solver

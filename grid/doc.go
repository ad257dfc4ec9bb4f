// Package grid holds the static cost surface that crucible searches over.
//
// What:
//
//   - Grid wraps a rectangular table of per-cell entry costs in [0,9].
//   - Cost(row, col) is bounds-checked: lookups outside the extent report
//     ok == false instead of panicking, so callers can treat them as
//     "no such neighbor".
//   - Parse, ParseString and Load read the digit-per-cell text format,
//     one line per row.
//
// Immutability:
//
//   - New deep-copies its input; nothing mutates a Grid after construction.
//   - A *Grid is therefore safe to share between goroutines without locking.
//
// Complexity:
//
//   - New, Parse: O(R×C) time and memory.
//   - Cost, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellRange: a cost lies outside [MinCost, MaxCost].
//   - ErrNotDigit: the text input contains a rune other than '0'..'9'.
package grid

package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellRange indicates a cell cost outside [MinCost, MaxCost].
	ErrCellRange = errors.New("grid: cell cost out of range")
	// ErrNotDigit indicates a non-digit rune in text input.
	ErrNotDigit = errors.New("grid: cell is not a decimal digit")
)

// Bounds on a single cell's entry cost.
const (
	MinCost = 0
	MaxCost = 9
)

// Grid is an immutable rows×cols table of entry costs.
// cells is stored row-major: the cost of (row, col) is cells[row*cols+col].
type Grid struct {
	rows, cols int
	cells      []int8
}

package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[row][col]. The input is copied, so later changes to values do not
// affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrCellRange (wrapped with the
// offending coordinates).
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]int8, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, v := range row {
			if v < MinCost || v > MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrCellRange, r, c, v)
			}
			cells = append(cells, int8(v))
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows. A nil *Grid has zero rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}

	return g.rows
}

// Cols returns the number of columns. A nil *Grid has zero columns.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}

	return g.cols
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Cost returns the cost of entering (row, col). ok is false when the
// coordinates fall outside the grid; the returned cost is then 0.
// Complexity: O(1).
func (g *Grid) Cost(row, col int) (cost int, ok bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return int(g.cells[g.index(row, col)]), true
}

// Values returns a fresh copy of the costs as a [row][col] slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[g.index(r, c)])
		}
	}

	return out
}

// String renders the grid back into its digit text form, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('0' + byte(g.cells[g.index(r, c)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (row, col) to its row-major offset.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a grid in digit-per-cell text form: one line per row, each
// rune a decimal digit giving the cost of entering that cell.
// Windows line endings and trailing blank lines are accepted; a blank line
// followed by more rows is reported as ErrNonRectangular.
func Parse(r io.Reader) (*Grid, error) {
	var (
		values  [][]int
		trailer int // blank lines seen since the last row
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			trailer++
			continue
		}
		if trailer > 0 && len(values) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, lineNo)
		}
		trailer = 0
		row := make([]int, 0, len(line))
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrNotDigit, lineNo, col+1, ch)
			}
			row = append(row, int(ch-'0'))
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return New(values)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// Load opens path and parses its contents with Parse.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

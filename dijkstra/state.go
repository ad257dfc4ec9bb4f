package dijkstra

import (
	"fmt"
	"strings"
)

// Heading is a cardinal direction of travel.
// Values are ordered clockwise so that turning is modular arithmetic.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West

	numHeadings = 4
)

// Left returns the heading after a 90° counter-clockwise turn.
func (h Heading) Left() Heading { return (h + numHeadings - 1) % numHeadings }

// Right returns the heading after a 90° clockwise turn.
func (h Heading) Right() Heading { return (h + 1) % numHeadings }

// Delta returns the (row, col) offset of one step in heading h.
// Rows grow southwards, columns grow eastwards.
func (h Heading) Delta() (dRow, dCol int) {
	switch h {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}

	return 0, 0
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h < numHeadings }

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading accepts N, E, S, W or the full names, in any case.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadHeading, s)
}

// MarshalText encodes h as its one-letter name.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadHeading, uint8(h))
	}

	return []byte(h.String()), nil
}

// UnmarshalText decodes a name accepted by ParseHeading.
func (h *Heading) UnmarshalText(text []byte) error {
	v, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = v

	return nil
}

// Position is a grid cell address.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one step away in heading h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// State is a search node: where the mover is, which way it faces, and how
// many consecutive steps it has taken in that heading. States are compared
// and hashed by the full tuple.
type State struct {
	Pos     Position
	Heading Heading
	Run     int
}

// Forward steps straight ahead, extending the current run by one.
func (s State) Forward() State {
	return State{Pos: s.Pos.Step(s.Heading), Heading: s.Heading, Run: s.Run + 1}
}

// Left turns counter-clockwise and steps, starting a new run of 1.
func (s State) Left() State {
	h := s.Heading.Left()

	return State{Pos: s.Pos.Step(h), Heading: h, Run: 1}
}

// Right turns clockwise and steps, starting a new run of 1.
func (s State) Right() State {
	h := s.Heading.Right()

	return State{Pos: s.Pos.Step(h), Heading: h, Run: 1}
}

func (s State) String() string {
	return fmt.Sprintf("%s %s×%d", s.Pos, s.Heading, s.Run)
}

// less orders states by row, col, heading, then run. It is the frontier's
// secondary key and only decides which of several equal-cost states is
// settled first.
func (s State) less(o State) bool {
	if s.Pos.Row != o.Pos.Row {
		return s.Pos.Row < o.Pos.Row
	}
	if s.Pos.Col != o.Pos.Col {
		return s.Pos.Col < o.Pos.Col
	}
	if s.Heading != o.Heading {
		return s.Heading < o.Heading
	}

	return s.Run < o.Run
}

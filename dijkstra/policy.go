package dijkstra

import "fmt"

// Policy generates the legal moves out of a State.
//
// The set of policies is closed: Basic and Windowed are the only
// implementations, which keeps the hot relaxation loop free of arbitrary
// callbacks and lets tests enumerate every variant.
type Policy interface {
	// Moves appends the successors of from to dst, before bounds filtering,
	// and returns the extended slice.
	Moves(from State, dst []State) []State
	// Goal returns the termination predicate for reaching target.
	Goal(target Position) Goal
	// RunCap is the longest straight run any successor may carry.
	RunCap() int
	// Validate reports ErrBadRunWindow for unusable parameters.
	Validate() error
	fmt.Stringer

	sealed()
}

// Basic allows a turn left or right at every step and a straight move only
// while the current run is shorter than MaxRun.
type Basic struct {
	MaxRun int
}

var _ Policy = Basic{}

// Moves implements Policy.
func (p Basic) Moves(from State, dst []State) []State {
	dst = append(dst, from.Left(), from.Right())
	if from.Run < p.MaxRun {
		dst = append(dst, from.Forward())
	}

	return dst
}

// Goal implements Policy: any run-length may stop at the target.
func (p Basic) Goal(target Position) Goal { return Goal{Target: target} }

// RunCap implements Policy.
func (p Basic) RunCap() int { return p.MaxRun }

// Validate implements Policy.
func (p Basic) Validate() error {
	if p.MaxRun < 1 {
		return fmt.Errorf("%w: basic max run %d < 1", ErrBadRunWindow, p.MaxRun)
	}

	return nil
}

func (p Basic) String() string { return fmt.Sprintf("basic(max=%d)", p.MaxRun) }

func (Basic) sealed() {}

// Windowed forces the mover to commit to at least MinRun straight steps
// before it may turn or stop, and to turn once it has taken MaxRun.
type Windowed struct {
	MinRun int
	MaxRun int
}

var _ Policy = Windowed{}

// Moves implements Policy.
//
//	Run <  MinRun          → straight only
//	MinRun ≤ Run < MaxRun  → left, right, straight
//	Run == MaxRun          → left, right
func (p Windowed) Moves(from State, dst []State) []State {
	switch {
	case from.Run < p.MinRun:
		dst = append(dst, from.Forward())
	case from.Run < p.MaxRun:
		dst = append(dst, from.Left(), from.Right(), from.Forward())
	default:
		dst = append(dst, from.Left(), from.Right())
	}

	return dst
}

// Goal implements Policy: the mover must have completed its minimum run.
func (p Windowed) Goal(target Position) Goal {
	return Goal{Target: target, MinRun: p.MinRun}
}

// RunCap implements Policy.
func (p Windowed) RunCap() int { return p.MaxRun }

// Validate implements Policy.
func (p Windowed) Validate() error {
	switch {
	case p.MaxRun < 1:
		return fmt.Errorf("%w: windowed max run %d < 1", ErrBadRunWindow, p.MaxRun)
	case p.MinRun < 0:
		return fmt.Errorf("%w: windowed min run %d < 0", ErrBadRunWindow, p.MinRun)
	case p.MinRun > p.MaxRun:
		return fmt.Errorf("%w: windowed min run %d > max run %d", ErrBadRunWindow, p.MinRun, p.MaxRun)
	}

	return nil
}

func (p Windowed) String() string {
	return fmt.Sprintf("windowed(min=%d,max=%d)", p.MinRun, p.MaxRun)
}

func (Windowed) sealed() {}

// Goal is the termination predicate of a search.
type Goal struct {
	Target Position
	MinRun int // 0 accepts any run-length
}

// Reached reports whether s stands on the target having completed MinRun.
func (g Goal) Reached(s State) bool {
	return s.Pos == g.Target && s.Run >= g.MinRun
}

// Successors returns the moves p allows out of from that stay on the
// surface, appended to dst. Candidates outside the surface are dropped
// silently: an off-grid cell is simply not a neighbour.
func Successors(p Policy, s Surface, from State, dst []State) []State {
	n := len(dst)
	dst = p.Moves(from, dst)
	out := dst[:n]
	for _, v := range dst[n:] {
		if _, ok := s.Cost(v.Pos.Row, v.Pos.Col); ok {
			out = append(out, v)
		}
	}

	return out
}

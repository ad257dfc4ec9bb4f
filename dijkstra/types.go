// Package dijkstra defines the sentinel errors, options and result types of
// the run-constrained search.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the cost reported when no policy-legal path reaches the
// goal. It exceeds any real path cost, which is bounded by
// rows × cols × 4 × (MaxRun+1) × 9.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by Search and the Policy validators.
var (
	// ErrNilGrid indicates that a nil Surface was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrEmptyGrid indicates a surface with zero rows or zero columns.
	ErrEmptyGrid = errors.New("dijkstra: grid has no cells")

	// ErrNilPolicy indicates that no movement policy was supplied.
	ErrNilPolicy = errors.New("dijkstra: policy is nil")

	// ErrBadRunWindow indicates run-length parameters that no path can
	// satisfy: MaxRun < 1, MinRun < 0, or MinRun > MaxRun.
	ErrBadRunWindow = errors.New("dijkstra: invalid run-length window")

	// ErrStartOutOfBounds indicates a start cell outside the surface.
	ErrStartOutOfBounds = errors.New("dijkstra: start outside grid")

	// ErrTargetOutOfBounds indicates a target cell outside the surface.
	ErrTargetOutOfBounds = errors.New("dijkstra: target outside grid")

	// ErrNoSeeds indicates that the seed heading list is empty.
	ErrNoSeeds = errors.New("dijkstra: no seed headings")

	// ErrBadHeading indicates a seed heading outside North..West.
	ErrBadHeading = errors.New("dijkstra: invalid heading")

	// ErrNegativeCost indicates a surface cell with a negative entry cost.
	ErrNegativeCost = errors.New("dijkstra: negative cell cost encountered")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Surface is the read-only cost grid a search runs over.
// *grid.Grid satisfies it.
type Surface interface {
	Rows() int
	Cols() int
	// Cost returns the cost of entering (row, col); ok is false outside
	// the surface.
	Cost(row, col int) (cost int, ok bool)
}

// Options configures a Search.
//
// Start      – cell the mover starts on; its own cost is never paid.
// Target     – goal cell; defaults to the bottom-right corner.
// Seeds      – headings the mover may start with, each at Run 0.
// ReturnPath – if true, Result.Path holds the settled state sequence.
// MaxCost    – entries costlier than this are never pushed. Must be ≥ 0.
//
//	Default is math.MaxInt64 (no cap).
type Options struct {
	Start      Position
	Target     Position
	Seeds      []Heading
	ReturnPath bool
	MaxCost    int64

	targetSet bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStart sets the start cell.
func WithStart(row, col int) Option {
	return func(o *Options) {
		o.Start = Position{Row: row, Col: col}
	}
}

// WithTarget sets the goal cell. Without it the goal is the bottom-right
// corner of the surface.
func WithTarget(row, col int) Option {
	return func(o *Options) {
		o.Target = Position{Row: row, Col: col}
		o.targetSet = true
	}
}

// WithSeedHeadings replaces the default East and South seed headings.
func WithSeedHeadings(hs ...Heading) Option {
	return func(o *Options) {
		o.Seeds = append([]Heading(nil), hs...)
	}
}

// WithReturnPath enables path reconstruction into Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the cumulative cost the search will consider. A goal
// beyond the cap is reported as Unreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the options Search starts from:
// start (0,0), target unset (bottom-right), seeds East and South,
// no path, no cost cap.
func DefaultOptions() Options {
	return Options{
		Start:   Position{},
		Seeds:   []Heading{East, South},
		MaxCost: math.MaxInt64,
	}
}

// Stats counts frontier activity during one Search.
type Stats struct {
	Pushed  int // frontier entries created, seeds included
	Settled int // entries popped with a current cost and expanded
	Stale   int // entries popped after a cheaper route was recorded
}

// Result is the outcome of a Search.
type Result struct {
	// Cost is the minimal total entry cost, or Unreachable.
	Cost int64
	// Final is the goal state that was settled; zero when unreachable.
	Final State
	// Path runs from a seed state to Final inclusive. Nil unless
	// WithReturnPath was given and the goal was reached.
	Path  []State
	Stats Stats
}

// Reachable reports whether the goal was reached.
func (r Result) Reachable() bool { return r.Cost != Unreachable }

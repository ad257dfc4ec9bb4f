package solver

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// ErrNilGrid indicates a nil grid handed to Solve or SolveAll.
var ErrNilGrid = errors.New("solver: grid is nil")

// Input is one named grid for SolveAll.
type Input struct {
	Name string
	Grid *grid.Grid
}

// Outcome is the result of one policy over one grid.
type Outcome struct {
	Policy    string           `json:"policy" yaml:"policy"`
	Cost      int64            `json:"cost" yaml:"cost"`
	Reachable bool             `json:"reachable" yaml:"reachable"`
	Path      []dijkstra.State `json:"path,omitempty" yaml:"path,omitempty"`
	Stats     dijkstra.Stats   `json:"stats" yaml:"stats"`
	Elapsed   time.Duration    `json:"elapsed" yaml:"elapsed"`
}

// Report holds both answers for one grid.
type Report struct {
	Name     string  `json:"name" yaml:"name"`
	Rows     int     `json:"rows" yaml:"rows"`
	Cols     int     `json:"cols" yaml:"cols"`
	Basic    Outcome `json:"basic" yaml:"basic"`
	Windowed Outcome `json:"windowed" yaml:"windowed"`
}

// Options configures a Solver.
type Options struct {
	Basic    dijkstra.Basic
	Windowed dijkstra.Windowed
	Logger   *slog.Logger
	WithPath bool
	Parallel int
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithBasic sets the run-cap policy.
func WithBasic(p dijkstra.Basic) Option {
	return func(o *Options) { o.Basic = p }
}

// WithWindowed sets the windowed policy.
func WithWindowed(p dijkstra.Windowed) Option {
	return func(o *Options) { o.Windowed = p }
}

// WithLogger sets the logger. A nil logger selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPaths asks every search to reconstruct its path.
func WithPaths() Option {
	return func(o *Options) { o.WithPath = true }
}

// WithParallel bounds how many grids SolveAll works on at once.
// Values below 1 are treated as 1.
func WithParallel(n int) Option {
	return func(o *Options) { o.Parallel = n }
}

// DefaultOptions returns basic(3), windowed(4,10), the default logger, no
// paths and four grids in flight.
func DefaultOptions() Options {
	return Options{
		Basic:    dijkstra.Basic{MaxRun: 3},
		Windowed: dijkstra.Windowed{MinRun: 4, MaxRun: 10},
		Parallel: 4,
	}
}

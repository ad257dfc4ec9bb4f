package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// Solver runs the basic and windowed searches over grids.
// It holds no per-grid state and is safe for concurrent use.
type Solver struct {
	opts Options
	log  *slog.Logger
}

// New validates both policies and returns a Solver.
func New(opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Basic.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Windowed.Validate(); err != nil {
		return nil, err
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Solver{opts: cfg, log: logger.With("component", "solver")}, nil
}

// Solve runs both policies over g concurrently and returns their outcomes.
func (s *Solver) Solve(ctx context.Context, name string, g *grid.Grid) (Report, error) {
	if g == nil {
		return Report{}, fmt.Errorf("%w: %s", ErrNilGrid, name)
	}
	rep := Report{Name: name, Rows: g.Rows(), Cols: g.Cols()}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		out, err := s.run(egCtx, name, g, s.opts.Basic)
		rep.Basic = out
		return err
	})
	eg.Go(func() error {
		out, err := s.run(egCtx, name, g, s.opts.Windowed)
		rep.Windowed = out
		return err
	})
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	return rep, nil
}

// SolveAll solves every input, at most Parallel grids at a time, and returns
// the reports in input order. The first error cancels grids not yet started.
func (s *Solver) SolveAll(ctx context.Context, inputs []Input) ([]Report, error) {
	reports := make([]Report, len(inputs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.Parallel)
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rep, err := s.Solve(egCtx, in.Name, in.Grid)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// run executes one search and logs its outcome.
func (s *Solver) run(ctx context.Context, name string, g *grid.Grid, p dijkstra.Policy) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	var opts []dijkstra.Option
	if s.opts.WithPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	start := time.Now()
	res, err := dijkstra.Search(g, p, opts...)
	elapsed := time.Since(start)
	if err != nil {
		s.log.ErrorContext(ctx, "search failed", "grid", name, "policy", p.String(), "error", err)
		return Outcome{}, fmt.Errorf("%s: %s: %w", name, p, err)
	}

	out := Outcome{
		Policy:    p.String(),
		Cost:      res.Cost,
		Reachable: res.Reachable(),
		Path:      res.Path,
		Stats:     res.Stats,
		Elapsed:   elapsed,
	}
	attrs := []any{
		"grid", name,
		"policy", out.Policy,
		"reachable", out.Reachable,
		"settled", res.Stats.Settled,
		"stale", res.Stats.Stale,
		"pushed", res.Stats.Pushed,
		"elapsed", elapsed,
	}
	if out.Reachable {
		attrs = append(attrs, "cost", out.Cost)
	}
	s.log.DebugContext(ctx, "search finished", attrs...)

	return out, nil
}

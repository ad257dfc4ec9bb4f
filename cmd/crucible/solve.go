package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/cmd/crucible/internal"
	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/solver"
)

// solveFlags override the configured policy windows for one run.
type solveFlags struct {
	basicMax    int
	windowedMin int
	windowedMax int
	path        bool
	parallel    int
}

func (a *app) newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [FILE...]",
		Short: "Solve one or more grids",
		Long: `Solve reads each FILE (or standard input when FILE is "-" or absent)
as a grid of digits and prints the basic and windowed minimum costs.`,
		Example: `  crucible solve input.txt
  crucible solve --windowed-min 2 --windowed-max 5 a.txt b.txt
  cat input.txt | crucible solve -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}
	cmd.Flags().IntVar(&f.basicMax, "basic-max", config.DefaultBasicMaxRun, "Basic policy: longest straight run")
	cmd.Flags().IntVar(&f.windowedMin, "windowed-min", config.DefaultWindowedMinRun, "Windowed policy: shortest run before a turn or stop")
	cmd.Flags().IntVar(&f.windowedMax, "windowed-max", config.DefaultWindowedMaxRun, "Windowed policy: longest straight run")
	cmd.Flags().BoolVar(&f.path, "path", false, "Also print the cheapest path for each policy")
	cmd.Flags().IntVar(&f.parallel, "parallel", config.DefaultParallel, "Grids solved at the same time")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	cfg := *a.cfg
	flags := cmd.Flags()
	if flags.Changed("basic-max") {
		cfg.Basic.MaxRun = f.basicMax
	}
	if flags.Changed("windowed-min") {
		cfg.Windowed.MinRun = f.windowedMin
	}
	if flags.Changed("windowed-max") {
		cfg.Windowed.MaxRun = f.windowedMax
	}
	if flags.Changed("path") {
		cfg.Output.Path = f.path
	}
	if flags.Changed("parallel") {
		cfg.Solver.Parallel = f.parallel
	}
	if err := config.NewValidator().Validate(&cfg); err != nil {
		return internal.WrapError(internal.ExitConfigError, "invalid solve options", err)
	}

	inputs, err := a.readInputs(cmd, args)
	if err != nil {
		return err
	}

	opts := []solver.Option{
		solver.WithBasic(cfg.BasicPolicy()),
		solver.WithWindowed(cfg.WindowedPolicy()),
		solver.WithLogger(a.logger),
		solver.WithParallel(cfg.Solver.Parallel),
	}
	if cfg.Output.Path {
		opts = append(opts, solver.WithPaths())
	}
	s, err := solver.New(opts...)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "invalid policy", err)
	}

	reports, err := s.SolveAll(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	format, err := internal.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "invalid output format", err)
	}

	return internal.NewFormatter(format, cmd.OutOrStdout()).PrintReports(reports)
}

// readInputs loads every named grid; "-" or no arguments reads stdin.
func (a *app) readInputs(cmd *cobra.Command, args []string) ([]solver.Input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]solver.Input, 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		var (
			g   *grid.Grid
			err error
		)
		name := arg
		if arg == "-" {
			if stdinUsed {
				return nil, internal.NewCLIError(internal.ExitUsageError, "standard input given more than once")
			}
			stdinUsed = true
			name = "stdin"
			g, err = grid.Parse(cmd.InOrStdin())
		} else {
			g, err = grid.Load(arg)
		}
		if err != nil {
			return nil, internal.WrapError(internal.ExitInputError, fmt.Sprintf("cannot read grid %s", name), err)
		}
		a.logger.Debug("grid loaded", "grid", name, "rows", g.Rows(), "cols", g.Cols())
		inputs = append(inputs, solver.Input{Name: name, Grid: g})
	}

	return inputs, nil
}

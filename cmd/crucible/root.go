package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/cmd/crucible/internal"
	"github.com/katalvlaran/crucible/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "crucible",
		Short: "Run-constrained minimum-cost grid traversal",
		Long: `crucible reads grids of digit entry costs and reports the cheapest
top-left to bottom-right traversal under two movement policies:

  basic     at most max_run consecutive steps in one heading
  windowed  between min_run and max_run steps before every turn or stop`,
		PersistentPreRunE: a.loadConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	a.flags.register(root)

	root.AddCommand(a.newSolveCmd())
	root.AddCommand(a.newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// execute runs cmd with SIGINT/SIGTERM cancelling its context.
func execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

// loadConfig is called before any command runs to load configuration and
// set up logging.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	if err := a.flags.validate(); err != nil {
		return err
	}
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	path := a.flags.ConfigFile
	if path == "" {
		path = os.Getenv("CRUCIBLE_CONFIG")
	}
	cfg, err := config.NewConfigLoader(config.NewValidator()).LoadWithDefaults(path)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = strings.ToLower(a.flags.OutputFormat)
	}

	level := cfg.SlogLevel()
	switch {
	case a.flags.Verbose:
		level = slog.LevelDebug
	case a.flags.Quiet:
		level = slog.LevelWarn
	}
	a.logger = internal.NewLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "path", path, "basic", cfg.BasicPolicy().String(), "windowed", cfg.WindowedPolicy().String())

	return nil
}

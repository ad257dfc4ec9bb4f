package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/cmd/crucible/internal"
)

// GlobalFlags holds global flags available to all commands
type GlobalFlags struct {
	Verbose      bool
	Quiet        bool
	OutputFormat string
	ConfigFile   string
}

// register binds the persistent flags on the root command.
func (f *GlobalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&f.Quiet, "quiet", "q", false, "Only log warnings and errors")
	cmd.PersistentFlags().StringVarP(&f.OutputFormat, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&f.ConfigFile, "config", "", "Path to config file (default: $CRUCIBLE_CONFIG)")
}

// validate rejects contradictory or unknown flag values.
func (f *GlobalFlags) validate() error {
	if f.Verbose && f.Quiet {
		return internal.NewCLIError(internal.ExitUsageError, "--verbose and --quiet cannot be used together")
	}
	if _, err := internal.ParseOutputFormat(f.OutputFormat); err != nil {
		return internal.WrapError(internal.ExitUsageError, "invalid --output", err)
	}

	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/cmd/crucible/internal"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := internal.ParseOutputFormat(a.cfg.Output.Format)
			if err != nil {
				return internal.WrapError(internal.ExitConfigError, "invalid output format", err)
			}
			return internal.NewFormatter(format, cmd.OutOrStdout()).PrintValue(a.cfg)
		},
	})

	return cmd
}

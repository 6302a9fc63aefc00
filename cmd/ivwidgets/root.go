package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ivwidgets",
		Short:         "ivwidgets hosts IntentVault dashboard widgets in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Shorthand for --log-level debug")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

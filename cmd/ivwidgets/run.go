package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/intentvault/widgets/internal/config"
	"github.com/intentvault/widgets/internal/logger"
	"github.com/intentvault/widgets/internal/registry"
	"github.com/intentvault/widgets/internal/tui"
)

type runOptions struct {
	manifestPath string
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mount the manifest's widgets and run the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHost(flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifestPath, "manifest", "m", "widgets.yaml", "Path to the embed manifest")

	return cmd
}

func runHost(flags *rootFlags, opts *runOptions) error {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	reg := registry.Default()

	manifest, err := config.ParseManifest(opts.manifestPath, reg.Defined)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(manifest, reg, log)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("host failed: %w", err)
	}

	return nil
}

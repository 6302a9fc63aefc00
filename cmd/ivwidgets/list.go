package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intentvault/widgets/internal/registry"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered widget tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	reg := registry.Default()
	tags := reg.All()

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	}

	if len(tags) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No widgets registered.")
		return nil
	}

	marker := "*"
	if term.IsTerminal(int(os.Stdout.Fd())) {
		marker = "●"
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tDEFINED")
	for _, tag := range tags {
		defined := ""
		if _, ok := reg.Lookup(tag); ok {
			defined = marker
		}
		fmt.Fprintf(w, "%s\t%s\n", tag, defined)
	}
	return w.Flush()
}

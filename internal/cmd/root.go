// Package cmd wires the sel CLI: selection reconciliation, printing,
// template rendering, and feature management.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for sel
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sel",
		Short: "Curate and print a repo-scoped file selection",
		Long: `Sel keeps a persistent, named subset of files in a git repository
and concatenates them into a single text payload, e.g. for feeding
to a language model.

The selection is edited through your $EDITOR: previously saved paths
appear uncommented, newly discovered directories appear as commented
suggestions, and the saved buffer becomes the new selection.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Status lines go to stderr; never color a non-terminal.
			if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
				color.NoColor = true
			}
		},
	}

	// Add subcommands
	cmd.AddCommand(NewSelectCommand())
	cmd.AddCommand(NewPrintCommand())
	cmd.AddCommand(NewRenderCommand())
	cmd.AddCommand(NewTemplateCommand())
	cmd.AddCommand(NewFeatureCommand())

	return cmd
}

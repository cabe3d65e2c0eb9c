package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/sel/internal/config"
	"github.com/harrison/sel/internal/output"
	"github.com/harrison/sel/internal/selection"
)

// NewPrintCommand creates the print command
func NewPrintCommand() *cobra.Command {
	var dryRun bool
	var copyOut bool

	cmd := &cobra.Command{
		Use:     "print",
		Aliases: []string{"p"},
		Short:   "Print the selected files as one payload",
		Long: `Print expands the saved selection into concrete files and writes each
one wrapped in <file path="..."> tags. With --dry-run only the file
paths are listed; with --copy the payload goes to the clipboard
instead of stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(dryRun, copyOut)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print only the file paths")
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the output to the clipboard")

	return cmd
}

func runPrint(dryRun, copyOut bool) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.FilePath(e.repoRoot))
	if err != nil {
		return err
	}
	if cfg.Selection == nil {
		return nil
	}

	var b strings.Builder
	if dryRun {
		expander := &selection.Expander{RepoRoot: e.repoRoot, WorkDir: e.workDir}
		err = expander.WalkFiles(cfg.Selection, func(absPath, relPath string) error {
			_, err := fmt.Fprintln(&b, relPath)
			return err
		})
	} else {
		err = writeFiles(&b, e, cfg.Selection)
	}
	if err != nil {
		return err
	}

	return output.Write(b.String(), copyOut)
}

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/sel/internal/config"
	"github.com/harrison/sel/internal/display"
	"github.com/harrison/sel/internal/editor"
	"github.com/harrison/sel/internal/selection"
	"github.com/harrison/sel/internal/token"
)

// NewSelectCommand creates the select command
func NewSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "select [roots...]",
		Aliases: []string{"s"},
		Short:   "Edit the repository's file selection",
		Long: `Select merges the saved selection with directories discovered under
the given roots (honoring .gitignore and .selectignore), opens the
result in $EDITOR, and saves whatever the edited buffer selects.

Prefix a path with '*' to include only its direct children instead of
the whole subtree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runSelect(out io.Writer, roots []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	cfgPath := config.FilePath(e.repoRoot)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	reconciler := &selection.Reconciler{
		RepoRoot: e.repoRoot,
		WorkDir:  e.workDir,
		Editor:   &editor.External{},
	}
	sel, err := reconciler.Reconcile(cfg.Selection, roots)
	if err != nil {
		return err
	}

	cfg.Selection = sel
	if err := cfg.Write(cfgPath); err != nil {
		return err
	}

	return reportSelection(out, e, sel)
}

// reportSelection prints the entry count and, for non-empty selections,
// an approximate token count of the selected content.
func reportSelection(out io.Writer, e *env, sel *selection.Selection) error {
	if sel.Len() == 0 {
		display.Warnf(out, "0 paths selected")
		return nil
	}

	content, err := selectedContent(e, sel)
	if err != nil {
		return err
	}
	display.Successf(out, "%d paths selected. Approximate token count: %d",
		sel.Len(), token.Estimate(content))
	return nil
}

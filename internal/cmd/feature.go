package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/sel/internal/display"
	"github.com/harrison/sel/internal/editor"
	"github.com/harrison/sel/internal/feature"
	"github.com/harrison/sel/internal/selection"
)

// NewFeatureCommand creates the feature command group
func NewFeatureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feature",
		Aliases: []string{"f"},
		Short:   "Manage named selections",
		Long: `Features are independent named selections, each with its own spec
note, stored under .select/features. Use them to keep one curated
file set per piece of work.`,
	}

	cmd.AddCommand(newFeatureCreateCommand())
	cmd.AddCommand(newFeatureDeleteCommand())
	cmd.AddCommand(newFeatureListCommand())
	cmd.AddCommand(newFeatureSelectCommand())
	cmd.AddCommand(newFeatureSpecCommand())

	return cmd
}

func newFeatureCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"c"},
		Short:   "Create a new feature",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			if err := feature.Create(e.repoRoot, name); err != nil {
				return err
			}

			display.Successf(cmd.OutOrStdout(), "Feature %q created.", name)
			return nil
		},
	}
}

func newFeatureDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"d"},
		Short:   "Delete a feature and its selection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			if err := feature.Delete(e.repoRoot, name); err != nil {
				return err
			}

			display.Successf(cmd.OutOrStdout(), "Feature %q deleted.", name)
			return nil
		},
	}
}

func newFeatureListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List all features",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			names, err := feature.List(e.repoRoot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				display.Warnf(out, "No features found.")
				return nil
			}
			display.Listf(out, "Available features:")
			for _, name := range names {
				display.Listf(out, "- %s", name)
			}
			return nil
		},
	}
}

func newFeatureSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "select <name> [roots...]",
		Aliases: []string{"s"},
		Short:   "Edit a feature's file selection",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			roots := args[1:]

			e, err := newEnv()
			if err != nil {
				return err
			}

			exists, err := feature.Exists(e.repoRoot, name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("feature %q does not exist, create it with 'feature create'", name)
			}

			prev, err := feature.ReadSelection(e.repoRoot, name)
			if err != nil {
				return err
			}

			reconciler := &selection.Reconciler{
				RepoRoot: e.repoRoot,
				WorkDir:  e.workDir,
				Editor:   &editor.External{},
			}
			sel, err := reconciler.Reconcile(prev, roots)
			if err != nil {
				return err
			}

			if err := feature.WriteSelection(e.repoRoot, name, sel); err != nil {
				return err
			}

			return reportSelection(cmd.OutOrStdout(), e, sel)
		},
	}
}

func newFeatureSpecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spec <name>",
		Short: "Edit a feature's spec note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			exists, err := feature.Exists(e.repoRoot, name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("feature %q does not exist, create it with 'feature create'", name)
			}

			path, err := feature.SpecPath(e.repoRoot, name)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := os.WriteFile(path, nil, 0644); err != nil {
					return fmt.Errorf("failed to create spec for feature %q: %w", name, err)
				}
			}

			return editor.Open(path, 1)
		},
	}
}

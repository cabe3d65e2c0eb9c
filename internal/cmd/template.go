package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/sel/internal/display"
	"github.com/harrison/sel/internal/editor"
	"github.com/harrison/sel/internal/template"
)

// NewTemplateCommand creates the template command group
func NewTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"t"},
		Short:   "Manage prompt templates",
		Long: `Templates live under .select/templates in the repository and are
rendered by 'sel render' with {{.Task}} and {{index .Args N}}.`,
	}

	cmd.AddCommand(newTemplateCreateCommand())
	cmd.AddCommand(newTemplateEditCommand())
	cmd.AddCommand(newTemplateDeleteCommand())
	cmd.AddCommand(newTemplateListCommand())

	return cmd
}

func newTemplateCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"c"},
		Short:   "Create a new template and open it in the editor",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			exists, err := template.Exists(e.repoRoot, name)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("template %q already exists, use 'template edit'", name)
			}

			path, err := template.Path(e.repoRoot, name)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(template.Placeholder), 0644); err != nil {
				return fmt.Errorf("failed to create template %q: %w", name, err)
			}
			if err := editor.Open(path, 2); err != nil {
				return err
			}

			display.Successf(cmd.OutOrStdout(), "Template %q created.", name)
			return nil
		},
	}
}

func newTemplateEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <name>",
		Aliases: []string{"e"},
		Short:   "Edit an existing template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			exists, err := template.Exists(e.repoRoot, name)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("template %q does not exist, use 'template create'", name)
			}

			path, err := template.Path(e.repoRoot, name)
			if err != nil {
				return err
			}
			if err := editor.Open(path, 1); err != nil {
				return err
			}

			display.Successf(cmd.OutOrStdout(), "Template %q updated.", name)
			return nil
		},
	}
}

func newTemplateDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"d"},
		Short:   "Delete a template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			e, err := newEnv()
			if err != nil {
				return err
			}

			if err := template.Delete(e.repoRoot, name); err != nil {
				return err
			}

			display.Successf(cmd.OutOrStdout(), "Template %q deleted.", name)
			return nil
		},
	}
}

func newTemplateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List all templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			names, err := template.List(e.repoRoot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				display.Warnf(out, "No templates found.")
				return nil
			}
			display.Listf(out, "Available templates:")
			for _, name := range names {
				display.Listf(out, "- %s", name)
			}
			return nil
		},
	}
}

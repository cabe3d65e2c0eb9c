package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/sel/internal/config"
	"github.com/harrison/sel/internal/editor"
	"github.com/harrison/sel/internal/output"
	"github.com/harrison/sel/internal/template"
)

// taskHeader opens the editor buffer used to gather a task description.
const taskHeader = "# Enter your task description. Lines starting with '#' are ignored.\n\n"

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	var copyOut bool

	cmd := &cobra.Command{
		Use:     "render <template> [args...]",
		Aliases: []string{"r"},
		Short:   "Render a template around the selected files",
		Long: `Render prompts for a task description in $EDITOR, renders the named
template with the task and any positional arguments, and emits the
rendered template before and after the selected files (a prompt
sandwich).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], args[1:], copyOut)
		},
	}

	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the output to the clipboard")

	return cmd
}

func runRender(name string, args []string, copyOut bool) error {
	e, err := newEnv()
	if err != nil {
		return err
	}

	exists, err := template.Exists(e.repoRoot, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("template %q does not exist", name)
	}

	task, err := taskFromEditor(&editor.External{Suffix: ".md"})
	if err != nil {
		return err
	}

	rendered, err := template.Render(e.repoRoot, name, template.Data{Task: task, Args: args})
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.FilePath(e.repoRoot))
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(rendered)
	b.WriteString("\n")
	if cfg.Selection != nil {
		if err := writeFiles(&b, e, cfg.Selection); err != nil {
			return err
		}
	}
	b.WriteString(rendered)

	return output.Write(b.String(), copyOut)
}

// taskFromEditor collects a free-text task description through the
// editor, stripping comment and blank lines from the result.
func taskFromEditor(ed editor.Editor) (string, error) {
	cursorLine := strings.Count(taskHeader, "\n") + 1

	content, err := ed.Edit(taskHeader, cursorLine)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrison/sel/internal/gitutil"
	"github.com/harrison/sel/internal/pathutil"
	"github.com/harrison/sel/internal/selection"
)

// env is the resolved filesystem context of one invocation: the
// canonical repository root and working directory every path conversion
// hangs off.
type env struct {
	repoRoot string
	workDir  string
}

func newEnv() (*env, error) {
	repoRoot, err := gitutil.RepoRoot()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	workDir, err := pathutil.Canonicalize(cwd)
	if err != nil {
		return nil, err
	}

	return &env{repoRoot: repoRoot, workDir: workDir}, nil
}

// writeFiles streams every selected file to w, each wrapped in
// <file path="REL"> tags with the path relative to the working
// directory.
func writeFiles(w io.Writer, e *env, sel *selection.Selection) error {
	expander := &selection.Expander{RepoRoot: e.repoRoot, WorkDir: e.workDir}
	return expander.WalkFiles(sel, func(absPath, relPath string) error {
		file, err := os.Open(absPath)
		if err != nil {
			return fmt.Errorf("failed to open file %s: %w", absPath, err)
		}
		defer file.Close()

		if _, err := fmt.Fprintf(w, "<file path=\"%s\">\n", relPath); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if _, err := io.Copy(w, file); err != nil {
			return fmt.Errorf("failed to read file %s: %w", absPath, err)
		}
		if _, err := fmt.Fprint(w, "</file>\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
}

// selectedContent returns the full <file>-tagged payload of a selection.
func selectedContent(e *env, sel *selection.Selection) (string, error) {
	var b strings.Builder
	if err := writeFiles(&b, e, sel); err != nil {
		return "", err
	}
	return b.String(), nil
}

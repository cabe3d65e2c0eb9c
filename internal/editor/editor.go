// Package editor runs the user's interactive text editor over a
// temporary buffer and returns the edited result.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultCommand is used when $EDITOR is not set.
const DefaultCommand = "vim"

// Editor presents text to the user for modification and returns the
// result. cursorLine is the 1-based line the cursor should start on.
type Editor interface {
	Edit(initial string, cursorLine int) (string, error)
}

// External spawns $EDITOR (falling back to vim) on a temporary file,
// blocks until it exits, and reads the file back. The temporary file is
// removed on every return path.
type External struct {
	// Suffix is appended to the temporary file name, so editors can pick
	// a filetype (e.g. ".md" for task buffers).
	Suffix string
}

// Edit implements Editor.
func (e *External) Edit(initial string, cursorLine int) (string, error) {
	file, err := os.CreateTemp("", "sel-*"+e.Suffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)

	if _, err := file.WriteString(initial); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to write temporary file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file %s: %w", path, err)
	}

	command := os.Getenv("EDITOR")
	if command == "" {
		command = DefaultCommand
	}

	cmd := exec.Command(command, fmt.Sprintf("+%d", cursorLine), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run editor %s: %w", command, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read temporary file %s: %w", path, err)
	}
	return string(edited), nil
}

// Open runs the editor directly on an existing file, placing the cursor
// on cursorLine. Used for files that live past the edit, like templates.
func Open(path string, cursorLine int) error {
	command := os.Getenv("EDITOR")
	if command == "" {
		command = DefaultCommand
	}

	cmd := exec.Command(command, fmt.Sprintf("+%d", cursorLine), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", command, err)
	}
	return nil
}

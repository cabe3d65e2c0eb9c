// Package output delivers rendered content to stdout or the clipboard.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Write sends content to the system clipboard when copy is true,
// otherwise to stdout. Clipboard writes are confirmed on stderr so the
// confirmation never mixes into piped output.
func Write(content string, copy bool) error {
	return WriteTo(os.Stdout, os.Stderr, content, copy)
}

// WriteTo is Write with explicit destinations, for testing.
func WriteTo(stdout, stderr io.Writer, content string, copy bool) error {
	if copy {
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(stderr, "Copied to clipboard.")
		return nil
	}

	if _, err := io.WriteString(stdout, content); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

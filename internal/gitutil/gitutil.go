// Package gitutil locates the enclosing git repository.
package gitutil

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/harrison/sel/internal/pathutil"
)

// ErrNotInRepository is returned when the working directory is not
// inside a git work tree.
var ErrNotInRepository = errors.New("not inside a git repository")

// RepoRoot returns the canonical absolute path of the repository root,
// as reported by `git rev-parse --show-toplevel`.
func RepoRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			return "", fmt.Errorf("%w: %s", ErrNotInRepository, stderr)
		}
		return "", fmt.Errorf("failed to run git rev-parse (is git installed?): %w", err)
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", ErrNotInRepository
	}

	// Canonicalize so repo-relative conversion agrees with canonicalized
	// selection paths (macOS reports /private-prefixed temp dirs).
	canon, err := pathutil.Canonicalize(root)
	if err != nil {
		return "", err
	}
	return canon, nil
}

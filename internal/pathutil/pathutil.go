// Package pathutil provides canonical and relative path conversions used by
// the selection engine. Persisted selections are repo-relative; in-memory
// reconciliation works on canonical absolute paths. These helpers are the
// only place that conversion happens.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Canonicalize converts path to an absolute, symlink-resolved form.
// The path must exist on disk; a missing path is an error.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize %s: %w", path, err)
	}

	return resolved, nil
}

// CanonicalizeFrom resolves path against base when it is relative, then
// canonicalizes it. base must already be absolute.
func CanonicalizeFrom(base, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return Canonicalize(path)
}

// Relativize expresses path relative to base. Both are expected to be
// absolute. Fails when no relative form exists (e.g. different drives
// on Windows).
func Relativize(base, path string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("failed to make %s relative to %s: %w", path, base, err)
	}
	return rel, nil
}

// RelativizeWithin is Relativize restricted to descendants of base: a
// result that escapes base (would start with "..") is an error. Used at
// the persistence boundary, where a selection outside the repository
// cannot be stored.
func RelativizeWithin(base, path string) (string, error) {
	rel, err := Relativize(base, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside %s", path, base)
	}
	return rel, nil
}

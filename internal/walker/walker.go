// Package walker implements ignore-aware directory traversal.
//
// The walker honors .gitignore files plus a configurable custom ignore
// filename at every directory level, including ancestor directories of
// each walk root up to the enclosing repository. Ignored directories are
// pruned: the walker never descends into them. Any I/O error aborts the
// walk immediately; there is no partial-success mode.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// GitIgnoreFilename is the conventional ignore file consulted at every level.
const GitIgnoreFilename = ".gitignore"

// Entry is a single filesystem entry yielded by a walk.
type Entry struct {
	Path  string
	IsDir bool
}

// WalkFunc is called once per entry. Returning an error aborts the walk.
type WalkFunc func(entry Entry) error

// Options configures a Walker.
type Options struct {
	// CustomIgnoreFilename is an additional ignore file consulted alongside
	// .gitignore at every directory level. Empty disables it.
	CustomIgnoreFilename string

	// MaxDepth limits descent below each root (0 = unlimited, 1 = the
	// root's direct children only). The root itself is always yielded.
	MaxDepth int
}

// Walker enumerates filesystem entries beneath a set of roots,
// honoring ignore rules. Entries within a directory are yielded in
// ReadDir order (sorted by name), so walks are deterministic for a
// fixed filesystem state.
type Walker struct {
	opts Options
}

// New creates a Walker with the given options.
func New(opts Options) *Walker {
	return &Walker{opts: opts}
}

// matcher is one compiled ignore file. Patterns apply to the subtree
// rooted at base, matched against base-relative paths.
type matcher struct {
	base string
	ign  *gitignore.GitIgnore
}

// Walk visits every non-ignored entry reachable from the roots, in root
// order. The first error — from the filesystem, an ignore file, or the
// callback — aborts the whole walk.
func (w *Walker) Walk(roots []string, fn WalkFunc) error {
	for _, root := range roots {
		if err := w.walkRoot(root, fn); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkRoot(root string, fn WalkFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	if err := fn(Entry{Path: root, IsDir: info.IsDir()}); err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	chain, err := w.ancestorMatchers(root)
	if err != nil {
		return err
	}
	return w.walkDir(root, chain, 1, fn)
}

func (w *Walker) walkDir(dir string, chain []matcher, depth int, fn WalkFunc) error {
	chain, err := w.appendDirMatchers(chain, dir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == ".git" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if ignored(chain, path, entry.IsDir()) {
			continue
		}

		if err := fn(Entry{Path: path, IsDir: entry.IsDir()}); err != nil {
			return err
		}

		if entry.IsDir() && (w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth) {
			if err := w.walkDir(path, chain, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// ancestorMatchers compiles the ignore files of root's ancestor
// directories, from the enclosing repository root (the nearest ancestor
// containing .git) down to root's parent. Roots outside any repository
// pick up ancestor ignore files up to the filesystem root.
func (w *Walker) ancestorMatchers(root string) ([]matcher, error) {
	if hasGitDir(root) {
		return nil, nil
	}

	var dirs []string
	dir := filepath.Dir(root)
	for {
		dirs = append(dirs, dir)
		if hasGitDir(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Outermost first, so inner files take precedence during matching.
	var chain []matcher
	for i := len(dirs) - 1; i >= 0; i-- {
		var err error
		chain, err = w.appendDirMatchers(chain, dirs[i])
		if err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// appendDirMatchers compiles dir's ignore files, if any, onto chain.
func (w *Walker) appendDirMatchers(chain []matcher, dir string) ([]matcher, error) {
	names := []string{GitIgnoreFilename}
	if w.opts.CustomIgnoreFilename != "" {
		names = append(names, w.opts.CustomIgnoreFilename)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		ign, err := gitignore.CompileIgnoreFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
		}
		chain = append(chain, matcher{base: dir, ign: ign})
	}
	return chain, nil
}

// ignored reports whether path is excluded by the matcher chain. The
// chain is ordered outermost first; the innermost ignore file with an
// opinion wins, which preserves gitignore negation semantics across
// nested files.
func ignored(chain []matcher, path string, isDir bool) bool {
	result := false
	for _, m := range chain {
		rel, err := filepath.Rel(m.base, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		rel = filepath.ToSlash(rel)

		if match, pattern := m.ign.MatchesPathHow(rel); pattern != nil {
			result = match
		} else if isDir {
			// Directory-only patterns ("build/") need the trailing slash.
			if match, pattern := m.ign.MatchesPathHow(rel + "/"); pattern != nil {
				result = match
			}
		}
	}
	return result
}

func hasGitDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

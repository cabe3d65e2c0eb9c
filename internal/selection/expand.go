package selection

import (
	"path/filepath"

	"github.com/harrison/sel/internal/pathutil"
	"github.com/harrison/sel/internal/walker"
)

// FileFunc is invoked once per selected file during expansion, with the
// file's absolute path and its path relative to the working directory.
type FileFunc func(absPath, relPath string) error

// Expander turns a persisted selection into the concrete files it
// denotes, honoring each entry's recursion flag and the same ignore
// rules as discovery.
type Expander struct {
	// RepoRoot is the canonical absolute repository root the stored
	// relative paths resolve against.
	RepoRoot string

	// WorkDir is the canonical absolute working directory relative paths
	// are reported against.
	WorkDir string
}

// WalkFiles visits every file of every selection entry, in the
// selection's display order. Non-recursive entries are bounded to their
// direct children. Any I/O failure aborts the whole expansion;
// already-invoked callbacks are not rolled back.
func (e *Expander) WalkFiles(sel *Selection, fn FileFunc) error {
	for _, p := range sel.Sorted() {
		root := filepath.Join(e.RepoRoot, p.Path)

		opts := walker.Options{CustomIgnoreFilename: CustomIgnoreFilename}
		if !p.Recursive {
			opts.MaxDepth = 1
		}

		err := walker.New(opts).Walk([]string{root}, func(entry walker.Entry) error {
			if entry.IsDir {
				return nil
			}
			rel, err := pathutil.Relativize(e.WorkDir, entry.Path)
			if err != nil {
				return err
			}
			return fn(entry.Path, rel)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package selection

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/sel/internal/editor"
	"github.com/harrison/sel/internal/pathutil"
	"github.com/harrison/sel/internal/walker"
)

// commentMarker prefixes ignored lines in the editor buffer.
const commentMarker = "#"

// bufferHeader is the fixed instructional header of the editor buffer.
const bufferHeader = `# Edit the selection, then save and quit.
# Uncommented lines become the selection; lines starting with '#' are ignored.
# Prefix a path with '*' to include only its direct children (non-recursive).
`

// Reconciler merges a persisted selection, caller-specified roots, and
// freshly discovered directories into one candidate set, round-trips it
// through the editor, and reparses the user's edits into the final
// selection.
type Reconciler struct {
	// RepoRoot is the canonical absolute repository root. Persisted
	// paths are stored relative to it.
	RepoRoot string

	// WorkDir is the canonical absolute working directory. Editor buffer
	// lines are relative to it.
	WorkDir string

	// Editor confirms the candidate set.
	Editor editor.Editor
}

// candidate is one entry of the in-memory candidate set, keyed by
// absolute path.
type candidate struct {
	recursive bool
	selected  bool // present in the persisted selection
}

// Reconcile runs the full reconciliation against the previously
// persisted selection (nil means none) and the caller-specified roots.
// The returned selection stores repo-relative paths, one entry per path.
func (r *Reconciler) Reconcile(prev *Selection, roots []string) (*Selection, error) {
	if prev == nil {
		prev = New()
	}

	candidates := make(map[string]candidate)

	// Persisted entries become absolute against the repo root. Stale
	// entries (paths that no longer exist) are kept as-is; the user sees
	// them in the buffer and the parse step rejects them if left in.
	for _, p := range prev.Sorted() {
		abs := filepath.Join(r.RepoRoot, p.Path)
		if canon, err := pathutil.Canonicalize(abs); err == nil {
			abs = canon
		}
		candidates[abs] = candidate{recursive: p.Recursive, selected: true}
	}

	canonRoots := make([]string, 0, len(roots))
	for _, root := range roots {
		canon, err := pathutil.Canonicalize(root)
		if err != nil {
			return nil, fmt.Errorf("root not found: %w", err)
		}
		canonRoots = append(canonRoots, canon)
		addCandidate(candidates, canon, true)
	}

	w := walker.New(walker.Options{CustomIgnoreFilename: CustomIgnoreFilename})
	err := w.Walk(canonRoots, func(entry walker.Entry) error {
		if !entry.IsDir {
			return nil
		}
		canon, err := pathutil.Canonicalize(entry.Path)
		if err != nil {
			return err
		}
		addCandidate(candidates, canon, true)
		return nil
	})
	if err != nil {
		return nil, err
	}

	buffer, cursorLine, err := r.renderBuffer(candidates)
	if err != nil {
		return nil, err
	}

	edited, err := r.Editor.Edit(buffer, cursorLine)
	if err != nil {
		return nil, err
	}

	return r.parseBuffer(edited)
}

// addCandidate inserts a discovered path unless an entry for it already
// exists. Existing entries keep their recursive flag untouched, so a
// previously confirmed non-recursive selection survives rediscovery.
func addCandidate(candidates map[string]candidate, path string, recursive bool) {
	if _, ok := candidates[path]; ok {
		return
	}
	candidates[path] = candidate{recursive: recursive}
}

// renderBuffer produces the editor buffer: header, originally-selected
// entries uncommented, then newly-suggested entries commented out. Both
// groups are sorted by the selection display order, paths relative to
// the working directory. Returns the buffer and the 1-based line the
// cursor should start on.
func (r *Reconciler) renderBuffer(candidates map[string]candidate) (string, int, error) {
	var selected, suggested []SelectedPath
	for abs, c := range candidates {
		rel, err := pathutil.Relativize(r.WorkDir, abs)
		if err != nil {
			return "", 0, err
		}
		p := SelectedPath{Path: rel, Recursive: c.recursive}
		if c.selected {
			selected = append(selected, p)
		} else {
			suggested = append(suggested, p)
		}
	}
	sortPaths(selected)
	sortPaths(suggested)

	var b strings.Builder
	b.WriteString(bufferHeader)
	b.WriteString("\n")
	for _, p := range selected {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	if len(selected) > 0 && len(suggested) > 0 {
		b.WriteString("\n")
	}
	for _, p := range suggested {
		b.WriteString(commentMarker)
		b.WriteString(" ")
		b.WriteString(p.String())
		b.WriteString("\n")
	}

	cursorLine := strings.Count(bufferHeader, "\n") + 2
	return b.String(), cursorLine, nil
}

// parseBuffer reparses the edited buffer into the final selection. Blank
// lines and comments are discarded; every remaining line must decode and
// canonicalize. Invalid lines are collected and reported together, never
// one at a time, and no partial selection is returned. When the same
// path appears with conflicting recursive flags, the last line wins.
func (r *Reconciler) parseBuffer(text string) (*Selection, error) {
	var parseErrs []error
	var order []string
	flags := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		p := ParsePath(line)
		abs, err := pathutil.CanonicalizeFrom(r.WorkDir, p.Path)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("invalid line %q: %w", line, err))
			continue
		}
		if _, seen := flags[abs]; !seen {
			order = append(order, abs)
		}
		flags[abs] = p.Recursive
	}

	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("failed to parse selection:\n%w", errors.Join(parseErrs...))
	}

	var relErrs []error
	result := New()
	for _, abs := range order {
		rel, err := pathutil.RelativizeWithin(r.RepoRoot, abs)
		if err != nil {
			relErrs = append(relErrs, err)
			continue
		}
		result.Add(SelectedPath{Path: rel, Recursive: flags[abs]})
	}
	if len(relErrs) > 0 {
		return nil, fmt.Errorf("selection cannot be stored relative to the repository:\n%w", errors.Join(relErrs...))
	}

	return result, nil
}

func sortPaths(paths []SelectedPath) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].String() < paths[j].String()
	})
}

// Package selection implements the file selection engine: the persisted
// selection model, the reconciliation algorithm that merges saved and
// newly discovered paths through an editor round trip, and the expansion
// walker that turns a selection back into concrete files.
package selection

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CustomIgnoreFilename is the project-specific ignore file consulted at
// every directory level during discovery and expansion, alongside .gitignore.
const CustomIgnoreFilename = ".selectignore"

// nonRecursivePrefix marks a non-recursive entry in the textual encoding.
const nonRecursivePrefix = "*"

// SelectedPath is one selected path plus its recursion flag. At rest the
// path is relative to the repository root; during reconciliation paths
// are absolute. Recursive means the directory and all descendants;
// non-recursive means direct children only.
type SelectedPath struct {
	Path      string
	Recursive bool
}

// ParsePath decodes the textual encoding: a leading '*' marks the entry
// non-recursive and is stripped from the path.
func ParsePath(s string) SelectedPath {
	if rest, ok := strings.CutPrefix(s, nonRecursivePrefix); ok {
		return SelectedPath{Path: rest, Recursive: false}
	}
	return SelectedPath{Path: s, Recursive: true}
}

// String encodes the entry, prefixing non-recursive paths with '*'.
// ParsePath(p.String()) == p for every path not itself starting with '*'.
func (p SelectedPath) String() string {
	if p.Recursive {
		return p.Path
	}
	return nonRecursivePrefix + p.Path
}

// Selection is a set of SelectedPath, unique by (path, recursive) pair.
// Display order is the lexicographic order of the encoded entries.
type Selection struct {
	paths map[SelectedPath]struct{}
}

// New creates a Selection containing the given entries.
func New(paths ...SelectedPath) *Selection {
	s := &Selection{paths: make(map[SelectedPath]struct{})}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts an entry. Adding an existing entry is a no-op.
func (s *Selection) Add(p SelectedPath) {
	if s.paths == nil {
		s.paths = make(map[SelectedPath]struct{})
	}
	s.paths[p] = struct{}{}
}

// Contains reports whether the exact (path, recursive) entry is present.
func (s *Selection) Contains(p SelectedPath) bool {
	_, ok := s.paths[p]
	return ok
}

// ContainsPath reports whether any entry has the given path, regardless
// of its recursive flag.
func (s *Selection) ContainsPath(path string) bool {
	for p := range s.paths {
		if p.Path == path {
			return true
		}
	}
	return false
}

// Merge adds every path in paths not already present (by path alone,
// ignoring the recursive flag) as a recursive entry. Existing entries
// keep their flag: a non-recursive selection is never silently upgraded
// by rediscovery.
func (s *Selection) Merge(paths []string) {
	for _, path := range paths {
		if !s.ContainsPath(path) {
			s.Add(SelectedPath{Path: path, Recursive: true})
		}
	}
}

// Len returns the number of entries.
func (s *Selection) Len() int {
	return len(s.paths)
}

// Sorted returns the entries in display order.
func (s *Selection) Sorted() []SelectedPath {
	out := make([]SelectedPath, 0, len(s.paths))
	for p := range s.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Equal reports whether both selections contain the same entries.
func (s *Selection) Equal(other *Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.paths {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// MarshalYAML encodes the selection as a sorted list of encoded entries.
func (s *Selection) MarshalYAML() (interface{}, error) {
	lines := make([]string, 0, s.Len())
	for _, p := range s.Sorted() {
		lines = append(lines, p.String())
	}
	return lines, nil
}

// UnmarshalYAML decodes a list of encoded entries.
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	var lines []string
	if err := value.Decode(&lines); err != nil {
		return fmt.Errorf("failed to decode selection: %w", err)
	}
	s.paths = make(map[SelectedPath]struct{}, len(lines))
	for _, line := range lines {
		s.Add(ParsePath(line))
	}
	return nil
}

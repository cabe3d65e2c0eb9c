package selection

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectFiles(t *testing.T, e *Expander, sel *Selection) []string {
	t.Helper()
	var rels []string
	err := e.WalkFiles(sel, func(absPath, relPath string) error {
		assert.True(t, filepath.IsAbs(absPath))
		rels = append(rels, relPath)
		return nil
	})
	require.NoError(t, err)
	return rels
}

func TestExpandNonRecursiveYieldsDirectChildrenOnly(t *testing.T) {
	root := newTestRepo(t)
	writeFile(t, filepath.Join(root, "d", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "d", "sub", "b.txt"), "b")

	e := &Expander{RepoRoot: root, WorkDir: root}

	rels := collectFiles(t, e, New(SelectedPath{Path: "d", Recursive: false}))
	assert.Equal(t, []string{filepath.Join("d", "a.txt")}, rels)
}

func TestExpandRecursiveYieldsDescendants(t *testing.T) {
	root := newTestRepo(t)
	writeFile(t, filepath.Join(root, "d", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "d", "sub", "b.txt"), "b")

	e := &Expander{RepoRoot: root, WorkDir: root}

	rels := collectFiles(t, e, New(SelectedPath{Path: "d", Recursive: true}))
	assert.Equal(t, []string{
		filepath.Join("d", "a.txt"),
		filepath.Join("d", "sub", "b.txt"),
	}, rels)
}

func TestExpandHonorsIgnoreRules(t *testing.T) {
	root := newTestRepo(t)
	writeFile(t, filepath.Join(root, "d", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "d", "skip", "b.txt"), "b")
	writeFile(t, filepath.Join(root, "d", ".gitignore"), "skip/\n")
	writeFile(t, filepath.Join(root, "d", "secret.txt"), "s")
	writeFile(t, filepath.Join(root, "d", CustomIgnoreFilename), "secret.txt\n")

	e := &Expander{RepoRoot: root, WorkDir: root}

	rels := collectFiles(t, e, New(SelectedPath{Path: "d", Recursive: true}))
	assert.Contains(t, rels, filepath.Join("d", "a.txt"))
	assert.NotContains(t, rels, filepath.Join("d", "skip", "b.txt"))
	assert.NotContains(t, rels, filepath.Join("d", "secret.txt"))
}

func TestExpandProcessesEntriesInDisplayOrder(t *testing.T) {
	root := newTestRepo(t)
	writeFile(t, filepath.Join(root, "alpha", "a.txt"), "a")
	writeFile(t, filepath.Join(root, "beta", "b.txt"), "b")

	e := &Expander{RepoRoot: root, WorkDir: root}

	sel := New(
		SelectedPath{Path: "beta", Recursive: true},
		SelectedPath{Path: "alpha", Recursive: true},
	)
	rels := collectFiles(t, e, sel)
	assert.Equal(t, []string{
		filepath.Join("alpha", "a.txt"),
		filepath.Join("beta", "b.txt"),
	}, rels)
}

func TestExpandSelectedFileEntry(t *testing.T) {
	root := newTestRepo(t)
	writeFile(t, filepath.Join(root, "notes.md"), "hi")

	e := &Expander{RepoRoot: root, WorkDir: root}

	rels := collectFiles(t, e, New(SelectedPath{Path: "notes.md", Recursive: true}))
	assert.Equal(t, []string{"notes.md"}, rels)
}

func TestExpandAbortsOnMissingEntry(t *testing.T) {
	root := newTestRepo(t)

	e := &Expander{RepoRoot: root, WorkDir: root}

	err := e.WalkFiles(New(SelectedPath{Path: "gone", Recursive: true}), func(string, string) error {
		t.Fatal("callback must not run for a missing entry")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/sel/internal/pathutil"
	"github.com/harrison/sel/internal/selection"
)

func newTestEnv(t *testing.T) *env {
	t.Helper()
	root, err := pathutil.Canonicalize(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	return &env{repoRoot: root, workDir: root}
}

func TestWriteFilesWrapsContentInFileTags(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(e.repoRoot, "d"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.repoRoot, "d", "a.txt"), []byte("alpha\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(e.repoRoot, "d", "b.txt"), []byte("beta\n"), 0644))

	sel := selection.New(selection.SelectedPath{Path: "d", Recursive: true})

	var b strings.Builder
	require.NoError(t, writeFiles(&b, e, sel))

	want := "<file path=\"" + filepath.Join("d", "a.txt") + "\">\nalpha\n</file>\n" +
		"<file path=\"" + filepath.Join("d", "b.txt") + "\">\nbeta\n</file>\n"
	assert.Equal(t, want, b.String())
}

func TestSelectedContentEmptySelection(t *testing.T) {
	e := newTestEnv(t)

	content, err := selectedContent(e, selection.New())
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestReportSelectionCounts(t *testing.T) {
	e := newTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(e.repoRoot, "d"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.repoRoot, "d", "a.txt"), []byte("alpha\n"), 0644))

	var out strings.Builder
	require.NoError(t, reportSelection(&out,
		e, selection.New(selection.SelectedPath{Path: "d", Recursive: true})))
	assert.Contains(t, out.String(), "1 paths selected")
	assert.Contains(t, out.String(), "token count")

	out.Reset()
	require.NoError(t, reportSelection(&out, e, selection.New()))
	assert.Contains(t, out.String(), "0 paths selected")
}

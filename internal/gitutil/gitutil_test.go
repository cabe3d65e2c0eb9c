package gitutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/sel/internal/pathutil"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestRepoRootInsideRepository(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	require.NoError(t, exec.Command("git", "init", dir).Run())
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	chdir(t, sub)

	root, err := RepoRoot()
	require.NoError(t, err)

	want, err := pathutil.Canonicalize(dir)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestRepoRootOutsideRepository(t *testing.T) {
	requireGit(t)

	chdir(t, t.TempDir())
	// Make sure no enclosing repository leaks in from the environment.
	t.Setenv("GIT_CEILING_DIRECTORIES", "/")

	_, err := RepoRoot()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInRepository)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/sel/internal/selection"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "select.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Selection)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "select.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selection: {not a list"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestWriteCreatesParentDirs(t *testing.T) {
	root := t.TempDir()
	path := FilePath(root)

	cfg := &Config{Selection: selection.New(
		selection.SelectedPath{Path: "docs", Recursive: true},
	)}
	require.NoError(t, cfg.Write(path))

	_, err := os.Stat(filepath.Join(root, DirName))
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Selection)
	assert.True(t, loaded.Selection.Equal(cfg.Selection))
}

func TestRoundTripDistinguishesAbsentFromEmpty(t *testing.T) {
	root := t.TempDir()
	path := FilePath(root)

	// Absent selection: the key is omitted entirely.
	require.NoError(t, (&Config{}).Write(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Selection)

	// Empty selection: present, zero entries.
	require.NoError(t, (&Config{Selection: selection.New()}).Write(path))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Selection)
	assert.Equal(t, 0, cfg.Selection.Len())
}

func TestRoundTripPreservesRecursiveFlags(t *testing.T) {
	root := t.TempDir()
	path := FilePath(root)

	sel := selection.New(
		selection.SelectedPath{Path: "docs", Recursive: false},
		selection.SelectedPath{Path: filepath.Join("src", "api"), Recursive: true},
	)
	require.NoError(t, (&Config{Selection: sel}).Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Selection)
	assert.True(t, loaded.Selection.Equal(sel))
}

// Package config reads and writes the repo-scoped selection config.
//
// The config lives at .select/select.yaml under the repository root and
// holds a single optional field: the selection. An absent file or absent
// key means "no selection yet", which is distinct from a present, empty
// selection. Writes replace the file wholesale.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/sel/internal/filelock"
	"github.com/harrison/sel/internal/selection"
)

const (
	// DirName is the tool's directory under the repository root.
	DirName = ".select"

	// FileName is the selection config file inside DirName.
	FileName = "select.yaml"
)

// Config is the persisted state of one repository's selection.
type Config struct {
	// Selection is nil when no selection has ever been made.
	Selection *selection.Selection `yaml:"selection,omitempty"`
}

// FilePath returns the config file path for a repository root.
func FilePath(repoRoot string) string {
	return filepath.Join(repoRoot, DirName, FileName)
}

// Load reads the config at path. A missing file yields an empty config,
// not an error; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Write serializes the config and atomically replaces the file at path,
// creating parent directories as needed. The write is guarded by a lock
// file next to the config.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", path, err)
	}
	return nil
}

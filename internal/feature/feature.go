// Package feature manages named selections. Each feature owns a
// directory under .select/features with its own selection file and a
// free-form spec note, so one repository can carry several curated file
// sets side by side.
package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/sel/internal/config"
	"github.com/harrison/sel/internal/selection"
)

// SpecFileName is the free-form note kept alongside a feature's selection.
const SpecFileName = "spec.md"

// Dir returns the features directory for a repository root.
func Dir(repoRoot string) string {
	return filepath.Join(repoRoot, config.DirName, "features")
}

// Path returns the directory of a named feature.
func Path(repoRoot, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	return filepath.Join(Dir(repoRoot), name), nil
}

// SelectionPath returns the selection config file of a named feature.
func SelectionPath(repoRoot, name string) (string, error) {
	path, err := Path(repoRoot, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(path, config.FileName), nil
}

// SpecPath returns the spec note file of a named feature.
func SpecPath(repoRoot, name string) (string, error) {
	path, err := Path(repoRoot, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(path, SpecFileName), nil
}

// Create makes a new feature directory. An existing feature is an error.
func Create(repoRoot, name string) error {
	exists, err := Exists(repoRoot, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("feature %q already exists", name)
	}
	path, err := Path(repoRoot, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create feature %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a named feature exists.
func Exists(repoRoot, name string) (bool, error) {
	path, err := Path(repoRoot, name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat feature %q: %w", name, err)
	}
	return true, nil
}

// Delete removes a feature and everything under it.
func Delete(repoRoot, name string) error {
	exists, err := Exists(repoRoot, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("feature %q does not exist", name)
	}
	path, err := Path(repoRoot, name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete feature %q: %w", name, err)
	}
	return nil
}

// List returns the names of all features, sorted. A missing features
// directory means no features.
func List(repoRoot string) ([]string, error) {
	entries, err := os.ReadDir(Dir(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadSelection loads a feature's selection. Nil means the feature has
// no selection yet.
func ReadSelection(repoRoot, name string) (*selection.Selection, error) {
	path, err := SelectionPath(repoRoot, name)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Selection, nil
}

// WriteSelection replaces a feature's selection wholesale.
func WriteSelection(repoRoot, name string, sel *selection.Selection) error {
	path, err := SelectionPath(repoRoot, name)
	if err != nil {
		return err
	}
	cfg := &config.Config{Selection: sel}
	return cfg.Write(path)
}

// validateName rejects names that would escape the features directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid feature name %q", name)
	}
	return nil
}

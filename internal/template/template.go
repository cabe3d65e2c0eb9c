// Package template manages named prompt templates stored under
// .select/templates in the repository.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// Placeholder seeds newly created templates.
const Placeholder = "{{/* Template for 'sel render'. Use {{.Task}} and {{index .Args 0}}, {{index .Args 1}}, ... */}}\n"

// Data is the rendering context: the task description gathered from the
// editor plus positional command-line arguments.
type Data struct {
	Task string
	Args []string
}

// Dir returns the templates directory for a repository root, creating
// it if needed.
func Dir(repoRoot string) (string, error) {
	dir := filepath.Join(repoRoot, ".select", "templates")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create templates directory: %w", err)
	}
	return dir, nil
}

// Path returns the file path of a named template.
func Path(repoRoot, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	dir, err := Dir(repoRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Exists reports whether a named template exists.
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
		return false, fmt.Errorf("failed to stat template %q: %w", name, err)
	}
	return true, nil
}

// Delete removes a named template. A missing template is an error.
func Delete(repoRoot, name string) error {
	exists, err := Exists(repoRoot, name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("template %q does not exist", name)
	}
	path, err := Path(repoRoot, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete template %q: %w", name, err)
	}
	return nil
}

// List returns the names of all templates, sorted.
func List(repoRoot string) ([]string, error) {
	dir, err := Dir(repoRoot)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Render reads a named template and executes it with data.
func Render(repoRoot, name string, data Data) (string, error) {
	path, err := Path(repoRoot, name)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", name, err)
	}

	tpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %q: %w", name, err)
	}

	var b strings.Builder
	if err := tpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return b.String(), nil
}

// validateName rejects names that would escape the templates directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid template name %q", name)
	}
	return nil
}

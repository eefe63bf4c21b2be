// Package target decides where a project will be materialized on disk.
package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Justinkarso/create-revite/internal/debug"
	"github.com/Justinkarso/create-revite/internal/naming"
)

// CurrentDirSentinel is the positional argument that selects the current
// working directory as the target.
const CurrentDirSentinel = "."

// ResolvedTarget is the effective destination for project generation.
// It is derived once and never mutated afterward.
type ResolvedTarget struct {
	// AbsolutePath is the directory the project will be generated into.
	AbsolutePath string
	// ProjectName is the package name derived from the directory.
	ProjectName string
	// UseCurrentDirectory is true when the target is the working directory.
	UseCurrentDirectory bool
}

// InvalidNameError reports a directory argument that failed name validation.
type InvalidNameError struct {
	// Name is the rejected directory argument.
	Name string
	// Result holds the validation errors and warnings.
	Result naming.ValidationResult
}

// Error returns the error message.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, strings.Join(e.Result.Errors, "; "))
}

// ExistsError reports a target path that is already occupied.
type ExistsError struct {
	// Path is the conflicting filesystem path.
	Path string
}

// Error returns the error message.
func (e *ExistsError) Error() string {
	return fmt.Sprintf("target already exists: %s", e.Path)
}

// Resolve computes the effective target from the raw directory argument.
// An empty argument or the current-directory sentinel selects the working
// directory; anything else must be a valid, not-yet-existing directory name
// resolved against the working directory.
func Resolve(raw string) (*ResolvedTarget, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	debug.DebugValue("[target] Working directory", cwd)

	if raw == "" || raw == CurrentDirSentinel {
		return &ResolvedTarget{
			AbsolutePath:        cwd,
			ProjectName:         filepath.Base(cwd),
			UseCurrentDirectory: true,
		}, nil
	}

	if result := naming.Validate(raw); !result.Valid {
		return nil, &InvalidNameError{Name: raw, Result: result}
	}

	abs := filepath.Join(cwd, raw)
	debug.DebugValue("[target] Resolved path", abs)

	// Never overwrite or merge into an existing entry, whatever its type.
	if _, err := os.Lstat(abs); err == nil {
		return nil, &ExistsError{Path: abs}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat target path: %w", err)
	}

	return &ResolvedTarget{
		AbsolutePath:        abs,
		ProjectName:         raw,
		UseCurrentDirectory: false,
	}, nil
}

// NonHiddenEntries lists directory entries whose names do not start with a
// dot. A non-empty result means generating into dir needs user confirmation.
func NonHiddenEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var visible []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			visible = append(visible, entry.Name())
		}
	}
	return visible, nil
}

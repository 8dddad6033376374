// Package location resolves where rendered records are written.
//
// Bulk and range runs write into a directory, single runs write one file.
// A path of the wrong type is never overwritten.
package location

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hdcodedev/gh-context/internal/ref"
)

var (
	// ErrNotADirectory indicates a directory was requested but a file exists at the path.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates a file was requested but a directory exists at the path.
	ErrIsADirectory = errors.New("is a directory")
)

// DefaultDirName returns "<repo>-issues" or "<repo>-prs".
func DefaultDirName(repo string, kind ref.Kind) string {
	return repo + "-" + kind.Plural()
}

// ResolveDirectory returns requested, or defaultName when requested is
// empty, after making sure it exists as a directory. Missing directories
// (and parents) are created; an existing plain file fails with
// ErrNotADirectory. Resolving an existing directory has no side effects.
func ResolveDirectory(requested, defaultName string) (string, error) {
	dir := requested
	if dir == "" {
		dir = defaultName
	}

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", fmt.Errorf("%w: --out %s must be a directory in bulk and range modes", ErrNotADirectory, dir)
		}
		return dir, nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
		return dir, nil
	default:
		return "", fmt.Errorf("failed to inspect output directory %s: %w", dir, err)
	}
}

// ResolveFile makes sure path can be written as a file: an existing
// directory fails with ErrIsADirectory and missing parents are created.
func ResolveFile(path string) (string, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return "", fmt.Errorf("%w: --out %s must be a file in single-item mode", ErrIsADirectory, path)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to inspect output file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return path, nil
}

// SingleItemPath returns the default location of a single markdown record,
// "<stem>/<stem>.<ext>", creating the "<stem>" directory.
func SingleItemPath(t ref.Target, ext string) (string, error) {
	stem := t.FileStem()
	dir, err := ResolveDirectory("", stem)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stem+"."+ext), nil
}

// WriteFile atomically writes data to path: it writes a sibling temp file
// and renames it into place, so a failed write never leaves a partial file.
// An existing file at path is replaced.
func WriteFile(path string, data []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write output to file %s: %w", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write output to file %s: %w", path, err)
	}
	return nil
}

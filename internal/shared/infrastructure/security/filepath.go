// Package security guards the paths of the data files the stores read and rewrite.
package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// forbiddenChars are rejected in data file paths; they only show up in paths
// that were pasted from a shell or built from untrusted input.
var forbiddenChars = []string{";", "&", "|", "$", "`", "<", ">", "\n", "\r", "\x00"}

// ValidateFilePath cleans a path, makes it absolute and resolves symlinks of
// existing files. A path that does not exist yet is returned cleaned.
func ValidateFilePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	for _, char := range forbiddenChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("file path contains forbidden character %q: %s", char, path)
		}
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cleanPath, nil
		}
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	return resolvedPath, nil
}

// ResolveDataFile places a bare or relative file name under dataDir and
// validates the result. Absolute names are validated as they are.
func ResolveDataFile(name, dataDir string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("data file name cannot be empty")
	}
	if !filepath.IsAbs(name) {
		if dataDir == "" {
			return "", fmt.Errorf("data directory cannot be empty for relative file %s", name)
		}
		name = filepath.Join(dataDir, name)
	}
	return ValidateFilePath(name)
}

// SafeReadFile reads a file after validating the path.
func SafeReadFile(path string) ([]byte, error) {
	cleanPath, err := ValidateFilePath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 - path is validated above
	return os.ReadFile(cleanPath)
}

// ReplaceFile deletes the file at path and writes data in its place, creating
// the parent directory when needed.
func ReplaceFile(path string, data []byte) error {
	cleanPath, err := ValidateFilePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.Remove(cleanPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", cleanPath, err)
	}

	// #nosec G306 - data files hold credential hashes and stay owner-only
	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", cleanPath, err)
	}
	return nil
}

package database

import (
	"os"
	"path/filepath"
)

// Config holds storage configuration.
type Config struct {
	// Driver selects the storage backend.
	Driver Driver

	// DataDir holds the JSON data files and is the default home of the
	// SQLite database.
	DataDir string

	// UsersFile and MeetingsFile name the JSON data files. Relative names
	// are resolved against DataDir.
	UsersFile    string
	MeetingsFile string

	// SQLitePath is the path to the SQLite database file.
	// Defaults to meetdesk.db under DataDir.
	SQLitePath string
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".meetdesk")
}

// ResolvedSQLitePath returns SQLitePath, or meetdesk.db under DataDir.
func (c Config) ResolvedSQLitePath() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	dir := c.DataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return filepath.Join(dir, "meetdesk.db")
}

// EnsureDirectory creates the parent directory for a file path if it doesn't exist.
func EnsureDirectory(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o750)
}

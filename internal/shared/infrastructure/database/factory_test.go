package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataDir(t *testing.T) {
	assert.Equal(t, ".meetdesk", filepath.Base(DefaultDataDir()))
}

func TestConfig_ResolvedSQLitePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := Config{DataDir: "/data", SQLitePath: "/elsewhere/app.db"}
		assert.Equal(t, "/elsewhere/app.db", cfg.ResolvedSQLitePath())
	})

	t.Run("defaults under data dir", func(t *testing.T) {
		cfg := Config{DataDir: "/data"}
		assert.Equal(t, filepath.Join("/data", "meetdesk.db"), cfg.ResolvedSQLitePath())
	})
}

func TestEnsureDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "meetdesk.db")

	require.NoError(t, EnsureDirectory(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

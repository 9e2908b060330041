package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ValidateFilePath("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("rejects forbidden characters", func(t *testing.T) {
		for _, char := range forbiddenChars {
			_, err := ValidateFilePath("/tmp/users" + char + ".json")
			assert.Error(t, err, "expected error for character %q", char)
			assert.Contains(t, err.Error(), "forbidden character")
		}
	})

	t.Run("accepts valid absolute path", func(t *testing.T) {
		tmpDir := t.TempDir()
		testFile := filepath.Join(tmpDir, "users.json")
		require.NoError(t, os.WriteFile(testFile, []byte("[]"), 0o600))

		result, err := ValidateFilePath(testFile)
		assert.NoError(t, err)

		expectedResolved, _ := filepath.EvalSymlinks(testFile)
		assert.Equal(t, expectedResolved, result)
	})

	t.Run("converts relative path to absolute", func(t *testing.T) {
		result, err := ValidateFilePath("meetings.json")
		assert.NoError(t, err)
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("resolves symlinks", func(t *testing.T) {
		tmpDir := t.TempDir()
		realFile := filepath.Join(tmpDir, "real.json")
		require.NoError(t, os.WriteFile(realFile, []byte("[]"), 0o600))

		linkFile := filepath.Join(tmpDir, "link.json")
		require.NoError(t, os.Symlink(realFile, linkFile))

		result, err := ValidateFilePath(linkFile)
		assert.NoError(t, err)

		expectedResolved, _ := filepath.EvalSymlinks(realFile)
		assert.Equal(t, expectedResolved, result)
	})

	t.Run("cleans traversal components", func(t *testing.T) {
		tmpDir := t.TempDir()
		result, err := ValidateFilePath(filepath.Join(tmpDir, "sub", "..", "users.json"))
		assert.NoError(t, err)
		assert.NotContains(t, result, "..")
	})
}

func TestResolveDataFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("joins relative names with the data directory", func(t *testing.T) {
		result, err := ResolveDataFile("users.json", tmpDir)
		require.NoError(t, err)
		assert.Equal(t, "users.json", filepath.Base(result))
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("keeps absolute names", func(t *testing.T) {
		abs := filepath.Join(tmpDir, "elsewhere", "meetings.json")
		result, err := ResolveDataFile(abs, "/ignored")
		require.NoError(t, err)
		assert.Equal(t, "meetings.json", filepath.Base(result))
		assert.Contains(t, result, "elsewhere")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := ResolveDataFile("", tmpDir)
		assert.Error(t, err)
	})

	t.Run("rejects relative name without directory", func(t *testing.T) {
		_, err := ResolveDataFile("users.json", "")
		assert.Error(t, err)
	})
}

func TestSafeReadFile(t *testing.T) {
	t.Run("reads valid file", func(t *testing.T) {
		tmpDir := t.TempDir()
		testFile := filepath.Join(tmpDir, "users.json")
		require.NoError(t, os.WriteFile(testFile, []byte(`[{"Username":"alice"}]`), 0o600))

		data, err := SafeReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, `[{"Username":"alice"}]`, string(data))
	})

	t.Run("returns not exist for missing file", func(t *testing.T) {
		_, err := SafeReadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("rejects invalid path", func(t *testing.T) {
		_, err := SafeReadFile("/tmp/test;rm -rf")
		assert.Error(t, err)
	})
}

func TestReplaceFile(t *testing.T) {
	t.Run("creates parent directory and file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "nested", "data", "users.json")

		require.NoError(t, ReplaceFile(target, []byte("[]")))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "meetings.json")
		require.NoError(t, os.WriteFile(target, []byte(`[{"MeetingName":"a very long previous body"}]`), 0o600))

		require.NoError(t, ReplaceFile(target, []byte("[]")))

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("rejects invalid path", func(t *testing.T) {
		assert.Error(t, ReplaceFile("", []byte("[]")))
	})
}

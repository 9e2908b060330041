package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"MEETDESK_STORE_DRIVER", "MEETDESK_DATA_DIR", "MEETDESK_USERS_FILE",
	"MEETDESK_MEETINGS_FILE", "MEETDESK_SQLITE_PATH", "MEETDESK_KDF_ITERATIONS",
	"MEETDESK_USER", "MEETDESK_PASSWORD",
}

// clearEnvVars blanks every meetdesk environment variable for the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

// chdir switches the working directory for the test and restores it on
// cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnvVars(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "json", cfg.StoreDriver)
	assert.Equal(t, ".meetdesk", filepath.Base(cfg.DataDir))
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, "meetings.json", cfg.MeetingsFile)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, 100_000, cfg.KDFIterations)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Password)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("MEETDESK_STORE_DRIVER", "sqlite")
	t.Setenv("MEETDESK_DATA_DIR", "/var/lib/meetdesk")
	t.Setenv("MEETDESK_SQLITE_PATH", "/var/lib/meetdesk/desk.db")
	t.Setenv("MEETDESK_KDF_ITERATIONS", "1000")
	t.Setenv("MEETDESK_USER", "alice")
	t.Setenv("MEETDESK_PASSWORD", "secret1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "/var/lib/meetdesk", cfg.DataDir)
	assert.Equal(t, "/var/lib/meetdesk/desk.db", cfg.SQLitePath)
	assert.Equal(t, 1000, cfg.KDFIterations)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "secret1", cfg.Password)
}

func TestLoad_RejectsMalformedInt(t *testing.T) {
	for _, value := range []string{"lots", "1e5", "100 000", "12.5"} {
		t.Run(value, func(t *testing.T) {
			clearEnvVars(t)
			chdir(t, t.TempDir())
			t.Setenv("MEETDESK_KDF_ITERATIONS", value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "MEETDESK_KDF_ITERATIONS")
		})
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
		field string
	}{
		{"MEETDESK_STORE_DRIVER", "postgres", "StoreDriver"},
		{"LOG_LEVEL", "verbose", "LogLevel"},
		{"LOG_FORMAT", "xml", "LogFormat"},
		{"APP_ENV", "staging", "AppEnv"},
		{"MEETDESK_KDF_ITERATIONS", "0", "KDFIterations"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnvVars(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnvVars(t)
	for _, v := range envVars {
		// godotenv never overrides variables that are already set
		require.NoError(t, os.Unsetenv(v))
	}
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MEETDESK_USER=bob\nLOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("MEETDESK_USER")
		_ = os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.User)
	assert.Equal(t, "warn", cfg.LogLevel)
}

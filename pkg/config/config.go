package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string `validate:"oneof=development production test"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`

	// Storage
	StoreDriver  string `validate:"oneof=json sqlite"`
	DataDir      string `validate:"required"`
	UsersFile    string `validate:"required"`
	MeetingsFile string `validate:"required"`
	SQLitePath   string

	// Credentials
	KDFIterations int `validate:"gte=1"`

	// Session defaults for non-interactive use
	User     string
	Password string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	kdfIterations, err := getIntEnv("MEETDESK_KDF_ITERATIONS", 100_000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		StoreDriver:  getEnv("MEETDESK_STORE_DRIVER", "json"),
		DataDir:      getEnv("MEETDESK_DATA_DIR", defaultDataDir()),
		UsersFile:    getEnv("MEETDESK_USERS_FILE", "users.json"),
		MeetingsFile: getEnv("MEETDESK_MEETINGS_FILE", "meetings.json"),
		SQLitePath:   getEnv("MEETDESK_SQLITE_PATH", ""),

		KDFIterations: kdfIterations,

		User:     getEnv("MEETDESK_USER", ""),
		Password: getEnv("MEETDESK_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid configuration: %s=%q is not an integer", key, value)
	}
	return i, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".meetdesk"
	}
	return filepath.Join(home, ".meetdesk")
}

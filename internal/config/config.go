package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"spendtrack/internal/backend"
)

type Config struct {
	// HTTP Server
	Port string

	// Storage
	StoreBackend string
	DataDir      string
	SQLiteDBPath string

	// Assistant
	ChatReplyDelay time.Duration

	// Logging
	LogLevel string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spendtrack.db"),

		ChatReplyDelay: getEnvDuration("CHAT_REPLY_DELAY", 500*time.Millisecond),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate store backend
	if !backend.Type(c.StoreBackend).IsValid() {
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of [file sqlite memory]", c.StoreBackend))
	}

	// Validate file backend configuration
	if c.StoreBackend == string(backend.FileBackend) && c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty when using file backend")
	}

	// Validate SQLite configuration if backend is sqlite
	if c.StoreBackend == string(backend.SQLiteBackend) {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate chat reply delay
	if c.ChatReplyDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid chat reply delay %v: must not be negative", c.ChatReplyDelay))
	} else if c.ChatReplyDelay > 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid chat reply delay %v: must be at most 10 seconds", c.ChatReplyDelay))
	}

	// Validate log level
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

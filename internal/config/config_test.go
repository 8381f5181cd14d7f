package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				Port:           "8080",
				StoreBackend:   "file",
				DataDir:        "./data",
				ChatReplyDelay: 500 * time.Millisecond,
				LogLevel:       "info",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:           "8080",
				StoreBackend:   "sqlite",
				SQLiteDBPath:   "./test.db",
				ChatReplyDelay: time.Second,
				LogLevel:       "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:         "abc",
				StoreBackend: "memory",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range low",
			config: Config{
				Port:         "0",
				StoreBackend: "memory",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name: "invalid port - out of range high",
			config: Config{
				Port:         "70000",
				StoreBackend: "memory",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid store backend",
			config: Config{
				Port:         "8080",
				StoreBackend: "invalid",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid store backend 'invalid': must be one of [file sqlite memory]",
		},
		{
			name: "file backend missing data directory",
			config: Config{
				Port:         "8080",
				StoreBackend: "file",
				DataDir:      "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "data directory cannot be empty when using file backend",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				Port:         "8080",
				StoreBackend: "sqlite",
				SQLiteDBPath: "",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "negative chat reply delay",
			config: Config{
				Port:           "8080",
				StoreBackend:   "memory",
				ChatReplyDelay: -time.Second,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "must not be negative",
		},
		{
			name: "excessive chat reply delay",
			config: Config{
				Port:           "8080",
				StoreBackend:   "memory",
				ChatReplyDelay: time.Minute,
				LogLevel:       "info",
			},
			wantErr:     true,
			errorString: "must be at most 10 seconds",
		},
		{
			name: "invalid log level",
			config: Config{
				Port:         "8080",
				StoreBackend: "memory",
				LogLevel:     "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
		{
			name: "multiple errors accumulate",
			config: Config{
				Port:         "abc",
				StoreBackend: "invalid",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "invalid store backend 'invalid'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalVars := map[string]string{
		"PORT":             os.Getenv("PORT"),
		"STORE_BACKEND":    os.Getenv("STORE_BACKEND"),
		"DATA_DIR":         os.Getenv("DATA_DIR"),
		"SQLITE_DB_PATH":   os.Getenv("SQLITE_DB_PATH"),
		"CHAT_REPLY_DELAY": os.Getenv("CHAT_REPLY_DELAY"),
		"LOG_LEVEL":        os.Getenv("LOG_LEVEL"),
	}

	// Clean environment
	for key := range originalVars {
		os.Unsetenv(key)
	}

	// Restore env vars at end of test
	defer func() {
		for key, value := range originalVars {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "8080" {
			t.Errorf("Load() Port = %v, want 8080", cfg.Port)
		}
		if cfg.StoreBackend != "file" {
			t.Errorf("Load() StoreBackend = %v, want file", cfg.StoreBackend)
		}
		if cfg.DataDir != "./data" {
			t.Errorf("Load() DataDir = %v, want ./data", cfg.DataDir)
		}
		if cfg.SQLiteDBPath != "./data/spendtrack.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/spendtrack.db", cfg.SQLiteDBPath)
		}
		if cfg.ChatReplyDelay != 500*time.Millisecond {
			t.Errorf("Load() ChatReplyDelay = %v, want 500ms", cfg.ChatReplyDelay)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		os.Setenv("PORT", "9090")
		os.Setenv("STORE_BACKEND", "sqlite")
		os.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		os.Setenv("CHAT_REPLY_DELAY", "2s")
		os.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.StoreBackend != "sqlite" {
			t.Errorf("Load() StoreBackend = %v, want sqlite", cfg.StoreBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.ChatReplyDelay != 2*time.Second {
			t.Errorf("Load() ChatReplyDelay = %v, want 2s", cfg.ChatReplyDelay)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		os.Setenv("CHAT_REPLY_DELAY", "invalid")

		cfg := Load()

		if cfg.ChatReplyDelay != 500*time.Millisecond {
			t.Errorf("Load() ChatReplyDelay = %v, want 500ms (default for invalid input)", cfg.ChatReplyDelay)
		}
	})
}

// Package config loads the configuration of the server from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/budgetplanner/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	ListenAddress   string
	APIURL          string
	ShutdownTimeout time.Duration

	// gin mode, "release" unless set
	GinMode string

	// "human" or "json". Empty picks depending on GinMode
	LogFormat string

	// Origins allowed by CORS. CORS is disabled if empty
	CORSAllowOrigins []string

	EnablePprof bool

	// Storage
	StorageBackend store.Backend
	SQLiteDSN      string

	// User whose budgets are listed when no userId is given
	DefaultUserID uint
}

// Load reads the files (".env" if none are given) into the environment
// and returns the configuration. Missing files are skipped, variables
// already set in the environment take precedence.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	cfg := &Config{
		ListenAddress:   getEnv("LISTEN_ADDRESS", ":8080"),
		APIURL:          getEnv("API_URL", "http://localhost:8080/api"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		GinMode:   getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat: getEnv("LOG_FORMAT", ""),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnv("ENABLE_PPROF", "false") == "true",

		StorageBackend: store.Backend(getEnv("STORAGE_BACKEND", string(store.BackendMemory))),
		SQLiteDSN:      getEnv("SQLITE_DSN", ""),

		DefaultUserID: getEnvUint("DEFAULT_USER_ID", 1),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.ListenAddress == "" {
		errors = append(errors, "listen address cannot be empty")
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	switch c.GinMode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of [release debug test]", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if !c.StorageBackend.IsValid() {
		errors = append(errors, fmt.Sprintf("invalid storage backend '%s': must be one of [memory sqlite]", c.StorageBackend))
	}

	if c.DefaultUserID == 0 {
		errors = append(errors, "invalid default user ID 0: must be at least 1")
	}

	if c.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// BaseURL returns the parsed API URL. Only call it on a valid Config.
func (c *Config) BaseURL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint) uint {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseUint(value, 10, 0); err == nil {
			return uint(i)
		}
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

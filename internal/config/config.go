// apps/go-server/internal/config/config.go
//
// Environment-driven configuration with defaults.
// main loads .env (godotenv) first, so values may come from either source.

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	Port         string
	LogLevel     string
	ClientOrigin string // single CORS origin, credentials allowed
	DBPath       string // empty selects the in-memory store
	WordsFile    string // empty selects the embedded dictionary
	DailySalt    string

	// Solve limits. The solver has no cancellation, so requests are bounded here.
	MaxGridSize        int
	MaxDictionaryWords int
	RequestTimeout     time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:               GetStringEnv("PORT", "5175"),
		LogLevel:           GetStringEnv("LOG_LEVEL", "info"),
		ClientOrigin:       GetStringEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DBPath:             GetStringEnv("DB_PATH", ""),
		WordsFile:          GetStringEnv("WORDS_FILE", ""),
		DailySalt:          GetStringEnv("DAILY_SALT", "local_dev_salt"),
		MaxGridSize:        GetIntEnv("MAX_GRID_SIZE", 8),
		MaxDictionaryWords: GetIntEnv("MAX_DICTIONARY_WORDS", 200000),
		RequestTimeout:     GetDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
	}
}

// GetStringEnv returns the value of key, or defaultValue if unset/empty.
func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv parses key as an int, falling back on missing or invalid values.
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetDurationEnv parses key with time.ParseDuration, falling back on missing or invalid values.
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

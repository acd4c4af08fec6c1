// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults;
// command-line flags override whatever is loaded here.
package config

import (
	"os"
	"strconv"
)

// Config holds all reconciler configuration.
type Config struct {
	BankFeedPath string
	BookFeedPath string
	LogLevel     string
	PrettyLog    bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		BankFeedPath: getEnv("RECON_BANK_FEED", ""),
		BookFeedPath: getEnv("RECON_BOOK_FEED", ""),
		LogLevel:     getEnv("RECON_LOG_LEVEL", "info"),
		PrettyLog:    getEnvAsBool("RECON_LOG_PRETTY", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

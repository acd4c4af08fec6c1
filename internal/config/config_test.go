package config_test

import (
	"testing"

	"card-reconciliation/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RECON_BANK_FEED", "")
	t.Setenv("RECON_BOOK_FEED", "")
	t.Setenv("RECON_LOG_LEVEL", "")
	t.Setenv("RECON_LOG_PRETTY", "")

	cfg := config.Load()

	assert.Empty(t, cfg.BankFeedPath)
	assert.Empty(t, cfg.BookFeedPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PrettyLog)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RECON_BANK_FEED", "/feeds/bank.csv")
	t.Setenv("RECON_BOOK_FEED", "/feeds/book.csv")
	t.Setenv("RECON_LOG_LEVEL", "debug")
	t.Setenv("RECON_LOG_PRETTY", "false")

	cfg := config.Load()

	assert.Equal(t, "/feeds/bank.csv", cfg.BankFeedPath)
	assert.Equal(t, "/feeds/book.csv", cfg.BookFeedPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PrettyLog)
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("RECON_LOG_PRETTY", "sometimes")

	cfg := config.Load()

	assert.True(t, cfg.PrettyLog)
}

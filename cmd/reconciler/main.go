package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"card-reconciliation/internal/config"
	"card-reconciliation/internal/gateway"
	"card-reconciliation/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	// Define command-line flags; environment/config values act as defaults.
	bankFile := flag.String("bank", cfg.BankFeedPath, "Path to the card-issuer statement CSV file (required)")
	bookFile := flag.String("book", cfg.BookFeedPath, "Path to the general-ledger CSV file (required)")
	flag.Parse()

	logger := newLogger(cfg)

	if *bankFile == "" || *bookFile == "" {
		fmt.Println("Error: both -bank and -book are required (or set RECON_BANK_FEED / RECON_BOOK_FEED).")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	csvRepo := gateway.NewCSVRecordRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo, logger)

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Run(context.Background(), *bankFile, *bookFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("reconciliation failed")
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate JSON report")
	}

	fmt.Println(string(output))
}

// newLogger builds the process logger. The JSON report goes to stdout, so
// all logging stays on stderr.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.PrettyLog {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

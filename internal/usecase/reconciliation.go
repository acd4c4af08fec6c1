package usecase

import (
	"context"
	"fmt"
	"time"

	"card-reconciliation/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReconciliationUseCase orchestrates one reconciliation run: load both
// feeds, run the matching engine, stamp the report envelope.
type ReconciliationUseCase struct {
	repo   RecordRepository
	logger zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(repo RecordRepository, logger zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, logger: logger}
}

// Run loads the bank and book feeds from the given paths and reconciles
// them. Load failures are the only error path; the engine itself never
// fails.
func (uc *ReconciliationUseCase) Run(ctx context.Context, bankPath, bookPath string) (*domain.Report, error) {
	bankData, err := uc.repo.GetBankRecords(ctx, bankPath)
	if err != nil {
		return nil, fmt.Errorf("could not get bank records: %w", err)
	}

	bookData, err := uc.repo.GetBookRecords(ctx, bookPath)
	if err != nil {
		return nil, fmt.Errorf("could not get book records: %w", err)
	}

	report := Reconcile(bankData, bookData)
	report.RunID = uuid.NewString()
	report.GeneratedAt = time.Now().UTC()

	uc.logger.Info().
		Str("run_id", report.RunID).
		Int("bank_records", report.Stats.BankCount).
		Int("book_records", report.Stats.BookCount).
		Int("matched", report.Stats.Matched).
		Int("mismatched", report.Stats.Mismatched).
		Int("missing_in_book", report.Stats.MissingInBook).
		Int("missing_in_bank", report.Stats.MissingInBank).
		Float64("total_discrepancy", report.Stats.TotalDiscrepancy).
		Msg("reconciliation complete")

	return report, nil
}

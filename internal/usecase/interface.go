package usecase

import (
	"context"

	"card-reconciliation/internal/domain"
)

// RecordRepository defines the interface for fetching the two record feeds.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go RecordRepository
type RecordRepository interface {
	GetBankRecords(ctx context.Context, path string) ([]domain.BankRecord, error)
	GetBookRecords(ctx context.Context, path string) ([]domain.BookRecord, error)
}

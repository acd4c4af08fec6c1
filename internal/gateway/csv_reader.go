package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"card-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// CSVRecordRepository implements the RecordRepository interface for CSV
// files.
type CSVRecordRepository struct{}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository() *CSVRecordRepository {
	return &CSVRecordRepository{}
}

// Bank feed column layout. The header row is skipped, not validated.
const (
	bankColID = iota
	bankColAccountNumber
	bankColTransactionDate
	bankColInvoiceNumber
	bankColTotal
	bankColMerchantID
	bankColFuelBrand
)

// Book feed column layout.
const (
	bookColID = iota
	bookColDocumentNumber
	bookColPostingDate
	bookColDescription
	bookColAmount
)

// GetBankRecords reads and parses the card-issuer statement CSV file.
// Date and key fields stay raw display strings; only amounts are cleaned.
func (r *CSVRecordRepository) GetBankRecords(ctx context.Context, path string) ([]domain.BankRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bank feed %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.BankRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		raw := make([]string, len(row))
		copy(raw, row)

		records = append(records, domain.BankRecord{
			ID:              row[bankColID],
			AccountNumber:   row[bankColAccountNumber],
			TransactionDate: row[bankColTransactionDate],
			InvoiceNumber:   row[bankColInvoiceNumber],
			Total:           parseAmount(row[bankColTotal]),
			MerchantID:      row[bankColMerchantID],
			FuelBrand:       row[bankColFuelBrand],
			Raw:             raw,
		})
	}
	return records, nil
}

// GetBookRecords reads and parses the general-ledger CSV file.
func (r *CSVRecordRepository) GetBookRecords(ctx context.Context, path string) ([]domain.BookRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open book feed %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.BookRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		raw := make([]string, len(row))
		copy(raw, row)

		records = append(records, domain.BookRecord{
			ID:             row[bookColID],
			DocumentNumber: row[bookColDocumentNumber],
			PostingDate:    row[bookColPostingDate],
			Description:    row[bookColDescription],
			Amount:         parseAmount(row[bookColAmount]),
			Raw:            raw,
		})
	}
	return records, nil
}

// parseAmount cleans a currency display string ("$1,234.56") and parses it.
// Unparseable or empty amounts default to zero so a bad cell surfaces as a
// discrepancy result downstream instead of aborting the load.
func parseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	value, _ := amount.Float64()
	return value
}

package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"card-reconciliation/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCSVRecordRepository_GetBankRecords(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.BankRecord
		wantErr  bool
	}{
		{
			name: "valid bank feed with currency cleanup",
			csvData: [][]string{
				{"id", "account_number", "transaction_date", "invoice_number", "total_amount", "merchant_id", "fuel_brand"},
				{"B1", "4111-0001", "01/05/2024", "INV1", "$1,234.56", "M-77", "Shell"},
				{"B2", "4111-0002", "2/5/2024", "INV2", "-45.00", "M-78", "BP"},
			},
			expected: []domain.BankRecord{
				{
					ID:              "B1",
					AccountNumber:   "4111-0001",
					TransactionDate: "01/05/2024",
					InvoiceNumber:   "INV1",
					Total:           1234.56,
					MerchantID:      "M-77",
					FuelBrand:       "Shell",
					Raw:             []string{"B1", "4111-0001", "01/05/2024", "INV1", "$1,234.56", "M-77", "Shell"},
				},
				{
					ID:              "B2",
					AccountNumber:   "4111-0002",
					TransactionDate: "2/5/2024",
					InvoiceNumber:   "INV2",
					Total:           -45.00,
					MerchantID:      "M-78",
					FuelBrand:       "BP",
					Raw:             []string{"B2", "4111-0002", "2/5/2024", "INV2", "-45.00", "M-78", "BP"},
				},
			},
		},
		{
			name: "unparseable amount defaults to zero",
			csvData: [][]string{
				{"id", "account_number", "transaction_date", "invoice_number", "total_amount", "merchant_id", "fuel_brand"},
				{"B1", "4111-0001", "01/05/2024", "INV1", "n/a", "M-77", "Shell"},
			},
			expected: []domain.BankRecord{
				{
					ID:              "B1",
					AccountNumber:   "4111-0001",
					TransactionDate: "01/05/2024",
					InvoiceNumber:   "INV1",
					Total:           0,
					MerchantID:      "M-77",
					FuelBrand:       "Shell",
					Raw:             []string{"B1", "4111-0001", "01/05/2024", "INV1", "n/a", "M-77", "Shell"},
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "account_number", "transaction_date", "invoice_number", "total_amount", "merchant_id", "fuel_brand"},
			},
			expected: nil,
		},
		{
			name:    "empty file without header",
			csvData: [][]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewCSVRecordRepository()
			got, gotErr := repo.GetBankRecords(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCSVRecordRepository_GetBankRecords_MissingFile(t *testing.T) {
	repo := NewCSVRecordRepository()
	got, err := repo.GetBankRecords(context.Background(), "/does/not/exist.csv")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestCSVRecordRepository_GetBookRecords(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.BookRecord
		wantErr  bool
	}{
		{
			name: "valid book feed",
			csvData: [][]string{
				{"id", "document_number", "posting_date", "description", "amount"},
				{"L1", "DOC-100", "01/05/2024", "INV1", "100.00"},
				{"L2", "DOC-101", "02/05/2024", " INV2 ", "$275.00"},
			},
			expected: []domain.BookRecord{
				{
					ID:             "L1",
					DocumentNumber: "DOC-100",
					PostingDate:    "01/05/2024",
					Description:    "INV1",
					Amount:         100.00,
					Raw:            []string{"L1", "DOC-100", "01/05/2024", "INV1", "100.00"},
				},
				{
					ID:             "L2",
					DocumentNumber: "DOC-101",
					PostingDate:    "02/05/2024",
					Description:    " INV2 ",
					Amount:         275.00,
					Raw:            []string{"L2", "DOC-101", "02/05/2024", " INV2 ", "$275.00"},
				},
			},
		},
		{
			name: "empty amount defaults to zero",
			csvData: [][]string{
				{"id", "document_number", "posting_date", "description", "amount"},
				{"L1", "DOC-100", "01/05/2024", "INV1", ""},
			},
			expected: []domain.BookRecord{
				{
					ID:             "L1",
					DocumentNumber: "DOC-100",
					PostingDate:    "01/05/2024",
					Description:    "INV1",
					Amount:         0,
					Raw:            []string{"L1", "DOC-100", "01/05/2024", "INV1", ""},
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "document_number", "posting_date", "description", "amount"},
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewCSVRecordRepository()
			got, gotErr := repo.GetBookRecords(context.Background(), tmpFile)

			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			assert.NoError(t, gotErr)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain decimal", raw: "100.00", expected: 100.00},
		{name: "currency symbol and thousands separators", raw: "$1,234.56", expected: 1234.56},
		{name: "surrounding whitespace", raw: " 42.50 ", expected: 42.50},
		{name: "negative amount", raw: "-45.00", expected: -45.00},
		{name: "empty defaults to zero", raw: "", expected: 0},
		{name: "non numeric defaults to zero", raw: "n/a", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, parseAmount(tt.raw), 1e-9)
		})
	}
}

// createTempCSV writes the rows to a fresh temp file and returns its path.
func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "feed-*.csv")
	if err != nil {
		return "", err
	}
	defer tmpFile.Close()

	writer := csv.NewWriter(tmpFile)
	if err := writer.WriteAll(data); err != nil {
		return "", err
	}
	writer.Flush()
	return tmpFile.Name(), writer.Error()
}

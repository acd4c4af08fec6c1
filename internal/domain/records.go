package domain

// MatchStatus classifies the reconciliation outcome for a single record.
type MatchStatus string

const (
	StatusMatched        MatchStatus = "MATCHED"
	StatusAmountMismatch MatchStatus = "AMOUNT_MISMATCH"
	StatusDateMismatch   MatchStatus = "DATE_MISMATCH"
	StatusMissingInBook  MatchStatus = "MISSING_IN_BOOK"
	StatusMissingInBank  MatchStatus = "MISSING_IN_BANK"
)

// BankRecord represents one line of the card-issuer statement feed.
// Date fields are kept as the raw display strings the feed carried;
// normalization happens only at comparison time.
type BankRecord struct {
	ID              string  `json:"id"`
	AccountNumber   string  `json:"account_number"`
	TransactionDate string  `json:"transaction_date"`
	InvoiceNumber   string  `json:"invoice_number"`
	Total           float64 `json:"total"`
	MerchantID      string  `json:"merchant_id"`
	FuelBrand       string  `json:"fuel_brand"`

	// Raw preserves the original field sequence for audit and display.
	Raw []string `json:"raw,omitempty"`
}

// BookRecord represents one line of the internal general-ledger feed.
// Description doubles as the invoice-number matching key.
type BookRecord struct {
	ID             string  `json:"id"`
	DocumentNumber string  `json:"document_number"`
	PostingDate    string  `json:"posting_date"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`

	// Raw preserves the original field sequence for audit and display.
	Raw []string `json:"raw,omitempty"`
}

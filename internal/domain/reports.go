package domain

import "time"

// ReconResult is the verdict for one reconciled bank record, one inferred
// pairing, or one orphan book record. The ID discloses provenance by prefix:
// "strict-<bank>-<book>", "inferred-<bank>-<book>", "bank-orphan-<bank>",
// "book-orphan-<book>".
type ReconResult struct {
	ID     string      `json:"id"`
	Status MatchStatus `json:"status"`
	Bank   *BankRecord `json:"bank_record,omitempty"`
	Book   *BookRecord `json:"book_record,omitempty"`

	// AmountDiff is book amount minus bank total for paired results, and the
	// one-sided amount (negated on the bank side) for orphans.
	AmountDiff float64 `json:"amount_diff"`
	Note       string  `json:"note"`
}

// DashboardStats summarizes a completed result sequence. Mismatched combines
// amount and date mismatches.
type DashboardStats struct {
	BankCount        int     `json:"bank_count"`
	BookCount        int     `json:"book_count"`
	Matched          int     `json:"matched"`
	Mismatched       int     `json:"mismatched"`
	MissingInBook    int     `json:"missing_in_book"`
	MissingInBank    int     `json:"missing_in_bank"`
	TotalDiscrepancy float64 `json:"total_discrepancy"`
}

// Report is the top-level structure for the final JSON output. RunID and
// GeneratedAt are stamped by the orchestrating use case, not by the engine.
type Report struct {
	RunID       string         `json:"run_id,omitempty"`
	GeneratedAt time.Time      `json:"generated_at,omitempty"`
	Results     []ReconResult  `json:"results"`
	Stats       DashboardStats `json:"stats"`
}

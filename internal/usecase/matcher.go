package usecase

import (
	"fmt"
	"math"
	"strings"

	"card-reconciliation/internal/dates"
	"card-reconciliation/internal/domain"
)

// amountEpsilon absorbs floating-point and rounding noise when comparing a
// bank total against a book amount. Differences below it count as equal.
const amountEpsilon = 0.01

func amountsMatch(bookAmount, bankTotal float64) bool {
	return math.Abs(bookAmount-bankTotal) < amountEpsilon
}

// buildDescriptionIndex groups book records by trimmed description,
// preserving feed order inside each bucket. That order drives every
// tie-break in pass 1.
func buildDescriptionIndex(bookData []domain.BookRecord) map[string][]int {
	index := make(map[string][]int)
	for i, book := range bookData {
		key := strings.TrimSpace(book.Description)
		index[key] = append(index[key], i)
	}
	return index
}

// primaryVerdict is the pass-1 outcome for one bank record: which book
// record to consume, with what status and note.
type primaryVerdict struct {
	bookIdx int
	status  domain.MatchStatus
	note    string
}

// evaluatePrimary applies the pass-1 selection policy. Among unconsumed
// candidates it prefers the first whose amount matches within epsilon, then
// settles MATCHED vs DATE_MISMATCH by normalized-date equality. With no
// exact-amount candidate it falls back to the first unconsumed candidate as
// an AMOUNT_MISMATCH: an invoice-number hit is strong enough evidence that
// the discrepancy must be surfaced rather than dropped. Returns nil when no
// candidate is usable, deferring the bank record to pass 2.
func evaluatePrimary(bank domain.BankRecord, candidates []int, bookData []domain.BookRecord, consumed map[string]bool) *primaryVerdict {
	fallback := -1
	for _, idx := range candidates {
		book := bookData[idx]
		if consumed[book.ID] {
			continue
		}
		if amountsMatch(book.Amount, bank.Total) {
			if dates.Normalize(book.PostingDate) == dates.Normalize(bank.TransactionDate) {
				return &primaryVerdict{bookIdx: idx, status: domain.StatusMatched, note: "Perfect Match"}
			}
			return &primaryVerdict{
				bookIdx: idx,
				status:  domain.StatusDateMismatch,
				note:    fmt.Sprintf("Date differs: bank %s vs book %s", bank.TransactionDate, book.PostingDate),
			}
		}
		if fallback < 0 {
			fallback = idx
		}
	}
	if fallback < 0 {
		return nil
	}
	return &primaryVerdict{
		bookIdx: fallback,
		status:  domain.StatusAmountMismatch,
		note:    fmt.Sprintf("Amount differs: bank %.2f vs book %.2f", bank.Total, bookData[fallback].Amount),
	}
}

// findInferred scans the whole book feed, in feed order, for the first
// unconsumed record agreeing with the bank record on both amount (within
// epsilon) and normalized date. The description index is deliberately not
// consulted: the invoice key already failed for this record, and the
// feed-order scan is part of the ordering contract. Worst case is
// O(unmatched bank x total book), a known scaling limit at statement-sized
// inputs.
func findInferred(bank domain.BankRecord, bookData []domain.BookRecord, consumed map[string]bool) int {
	bankDate := dates.Normalize(bank.TransactionDate)
	for i, book := range bookData {
		if consumed[book.ID] {
			continue
		}
		if amountsMatch(book.Amount, bank.Total) && dates.Normalize(book.PostingDate) == bankDate {
			return i
		}
	}
	return -1
}

// Reconcile pairs the bank feed against the book feed and classifies every
// record. It is a pure function of its inputs: identical inputs always yield
// the identical result sequence. Result order is pass-1 verdicts in
// bank-feed order, then pass-2 verdicts for the remaining bank records in
// bank-feed order, then book orphans in book-feed order.
func Reconcile(bankData []domain.BankRecord, bookData []domain.BookRecord) *domain.Report {
	index := buildDescriptionIndex(bookData)
	consumed := make(map[string]bool, len(bookData))
	results := make([]domain.ReconResult, 0, len(bankData))

	// Pass 1: strict matching on the invoice-number key.
	var deferred []int
	for i := range bankData {
		bank := bankData[i]
		key := strings.TrimSpace(bank.InvoiceNumber)
		verdict := evaluatePrimary(bank, index[key], bookData, consumed)
		if verdict == nil {
			deferred = append(deferred, i)
			continue
		}
		book := bookData[verdict.bookIdx]
		consumed[book.ID] = true
		results = append(results, domain.ReconResult{
			ID:         fmt.Sprintf("strict-%s-%s", bank.ID, book.ID),
			Status:     verdict.status,
			Bank:       &bankData[i],
			Book:       &bookData[verdict.bookIdx],
			AmountDiff: book.Amount - bank.Total,
			Note:       verdict.note,
		})
	}

	// Pass 2: inferred matching by amount+date coincidence for bank records
	// whose invoice key found nothing usable.
	for _, i := range deferred {
		bank := bankData[i]
		idx := findInferred(bank, bookData, consumed)
		if idx < 0 {
			results = append(results, domain.ReconResult{
				ID:         fmt.Sprintf("bank-orphan-%s", bank.ID),
				Status:     domain.StatusMissingInBook,
				Bank:       &bankData[i],
				AmountDiff: -bank.Total,
				Note:       fmt.Sprintf("Invoice %s found only in the bank feed", bank.InvoiceNumber),
			})
			continue
		}
		book := bookData[idx]
		consumed[book.ID] = true
		results = append(results, domain.ReconResult{
			ID:         fmt.Sprintf("inferred-%s-%s", bank.ID, book.ID),
			Status:     domain.StatusMatched,
			Bank:       &bankData[i],
			Book:       &bookData[idx],
			AmountDiff: 0,
			Note:       fmt.Sprintf("Inferred match on amount and date; invoice %s absent from book feed", bank.InvoiceNumber),
		})
	}

	// Orphan sweep: book records no pass consumed.
	for i := range bookData {
		book := bookData[i]
		if consumed[book.ID] {
			continue
		}
		results = append(results, domain.ReconResult{
			ID:         fmt.Sprintf("book-orphan-%s", book.ID),
			Status:     domain.StatusMissingInBank,
			Book:       &bookData[i],
			AmountDiff: book.Amount,
			Note:       fmt.Sprintf("Ledger entry %s has no bank-side counterpart", book.DocumentNumber),
		})
	}

	return &domain.Report{
		Results: results,
		Stats:   buildStats(len(bankData), len(bookData), results),
	}
}

// buildStats reduces a completed result sequence into dashboard counters.
func buildStats(bankCount, bookCount int, results []domain.ReconResult) domain.DashboardStats {
	stats := domain.DashboardStats{BankCount: bankCount, BookCount: bookCount}
	for _, result := range results {
		switch result.Status {
		case domain.StatusMatched:
			stats.Matched++
		case domain.StatusAmountMismatch, domain.StatusDateMismatch:
			stats.Mismatched++
		case domain.StatusMissingInBook:
			stats.MissingInBook++
		case domain.StatusMissingInBank:
			stats.MissingInBank++
		}
		stats.TotalDiscrepancy += math.Abs(result.AmountDiff)
	}
	return stats
}

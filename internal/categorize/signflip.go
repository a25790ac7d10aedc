package categorize

import (
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

// expenseCategories are the categories used as evidence that a statement row
// is a purchase. Income and Transfers are excluded since they legitimately
// carry positive amounts in the normal convention.
var expenseCategories = map[string]bool{
	"Groceries":      true,
	"Food & Dining":  true,
	"Transportation": true,
	"Entertainment":  true,
	"Subscriptions":  true,
	"Shopping":       true,
	"Healthcare":     true,
	"Utilities":      true,
	"Mortgage":       true,
	"Repairs":        true,
	"Housing":        true,
	"Travel":         true,
	"Education":      true,
	"Personal Care":  true,
	"Software":       true,
	"Legal":          true,
	"Fees & Charges": true,
}

// bankSectionHeaders appear on bank-account PDF statements that group rows
// under deposit and withdrawal sections. Such statements are already signed
// correctly by the row-level extraction, so the global flip must not run.
var bankSectionHeaders = []string{
	"electronic deposits",
	"electronic payments",
	"deposits and credits",
	"withdrawals and debits",
}

// StatementHints carries statement-level context that can veto the global
// sign flip even when the row heuristic would trigger it.
type StatementHints struct {
	// HasDebitCreditColumns is set when the PDF layout had separate debit
	// and credit columns, which already encode the sign per row.
	HasDebitCreditColumns bool
	// PageText is the accumulated raw text of the statement pages, scanned
	// for bank-account section headers. Empty for CSV statements.
	PageText string
	// Institution is the detected issuer name, when known.
	Institution string
	// FromCSV marks statements parsed from a CSV export rather than a PDF.
	FromCSV bool
}

// HasBankSections reports whether text contains bank-account-style section
// headers.
func HasBankSections(text string) bool {
	lower := strings.ToLower(text)
	for _, h := range bankSectionHeaders {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// NeedsSignFlip decides whether a statement's amounts use the inverted
// credit-card convention (purchases positive). It classifies every row's
// description ignoring the amount sign; if at least three rows look like
// expenses and more than 60% of those carry positive amounts, the whole
// statement needs negating.
func NeedsSignFlip(txns []model.Transaction) bool {
	expenseRows := 0
	positiveRows := 0
	for _, t := range txns {
		if !expenseCategories[Categorize(t.Description, 0)] {
			continue
		}
		expenseRows++
		if t.Amount > 0 {
			positiveRows++
		}
	}
	if expenseRows < 3 {
		return false
	}
	return float64(positiveRows)/float64(expenseRows) > 0.6
}

// ShouldFlip applies NeedsSignFlip with the statement-level suppressions:
// explicit debit/credit columns, bank-account section headers in the page
// text, and Chase CSV exports. The Chase exemption is a special case for an
// export that is already correctly signed but whose rent-like income rows
// get miscategorized as expenses, which would otherwise cause a harmful
// double flip.
func ShouldFlip(txns []model.Transaction, hints StatementHints) bool {
	if hints.HasDebitCreditColumns {
		return false
	}
	if hints.PageText != "" && HasBankSections(hints.PageText) {
		return false
	}
	if hints.FromCSV && strings.EqualFold(hints.Institution, "Chase") {
		return false
	}
	return NeedsSignFlip(txns)
}

// FlipSigns negates every transaction amount, returning a new slice.
func FlipSigns(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		t.Amount = -t.Amount
		out[i] = t
	}
	return out
}

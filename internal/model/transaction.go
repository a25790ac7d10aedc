// Package model defines the core data types shared across the application.
package model

// Transaction represents a single normalized financial transaction.
//
// Sign convention: negative amounts are money out (expenses), positive
// amounts are money in (income/credits). Parsers may extract the opposite
// convention from raw statements; the ingestion pipeline corrects signs
// before transactions leave it.
type Transaction struct {
	Date         string  // source-format date string, parsed on demand by the dates package
	Description  string  // merchant/payee text
	Category     string  // one of the built-in taxonomy, a custom category, or "Uncategorized"
	Subcategory  string  // user-entered only, never auto-assigned
	Source       string  // originating file name
	Institution  string  // best-effort bank/issuer name
	AccountLast4 string  // last 4 digits of the account/card identifier, best-effort
	Amount       float64 // negative = expense, positive = income
	ID           int     // unique and dense (0..n-1) within one profile's transaction set
}

// Reindex assigns dense sequential IDs starting at 0. It is called after
// every mutation that removes or reorders transactions so the ID invariant
// holds at all times.
func Reindex(txns []Transaction) []Transaction {
	for i := range txns {
		txns[i].ID = i
	}
	return txns
}

// RemoveBySource drops every transaction originating from the given file and
// reindexes the remainder.
func RemoveBySource(txns []Transaction, source string) []Transaction {
	kept := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Source != source {
			kept = append(kept, t)
		}
	}
	return Reindex(kept)
}

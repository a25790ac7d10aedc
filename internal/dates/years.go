package dates

import (
	"sort"

	"github.com/glei1339/FinLens/internal/model"
)

// UniqueYears returns the distinct years present in the transaction set,
// newest first. Transactions with unparseable dates are skipped.
func UniqueYears(txns []model.Transaction) []int {
	seen := make(map[int]bool)
	for _, t := range txns {
		if y, ok := Year(t.Date); ok {
			seen[y] = true
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// FilterByYear returns only the transactions whose date falls in the given
// year.
func FilterByYear(txns []model.Transaction, year int) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if y, ok := Year(t.Date); ok && y == year {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

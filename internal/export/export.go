// Package export writes the current transaction set back out as CSV, the
// inverse of ingestion.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glei1339/FinLens/internal/dates"
	"github.com/glei1339/FinLens/internal/model"
)

// Filter narrows which transactions are exported. Zero values mean "all".
type Filter struct {
	Category string
	Year     int
	Month    int // 1-12, only meaningful with Year set
}

func (f Filter) matches(t model.Transaction) bool {
	if f.Category != "" && !strings.EqualFold(t.Category, f.Category) {
		return false
	}
	if f.Year != 0 {
		if f.Month != 0 {
			ym, ok := dates.YearMonthOf(t.Date)
			if !ok || ym.Year != f.Year || ym.Month != f.Month {
				return false
			}
		} else {
			year, ok := dates.Year(t.Date)
			if !ok || year != f.Year {
				return false
			}
		}
	}
	return true
}

// WriteCSV writes the filtered transactions with the columns Date,
// Description, Amount, Category. Returns the number of rows written.
func WriteCSV(w io.Writer, txns []model.Transaction, filter Filter) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Amount", "Category"}); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	written := 0
	for _, t := range txns {
		if !filter.matches(t) {
			continue
		}
		record := []string{
			t.Date,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Category,
		}
		if err := cw.Write(record); err != nil {
			return written, fmt.Errorf("failed to write row: %w", err)
		}
		written++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("failed to flush: %w", err)
	}
	return written, nil
}

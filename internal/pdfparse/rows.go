package pdfparse

import (
	"regexp"
	"sort"
	"strings"
)

// yTolerance is how far apart two fragments' y coordinates may be while
// still belonging to the same visual row.
const yTolerance = 4.0

// textRow is one visual row of fragments, sorted left to right.
type textRow struct {
	text      string
	fragments []Fragment
	y         float64
}

// groupIntoRows clusters fragments into visual rows. Fragments are sorted
// by (y, x) so one sweep suffices: a fragment either joins the most recent
// row or starts a new one.
func groupIntoRows(fragments []Fragment) []textRow {
	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []textRow
	for _, f := range sorted {
		if len(rows) > 0 && f.Y-rows[len(rows)-1].y <= yTolerance {
			last := &rows[len(rows)-1]
			last.fragments = append(last.fragments, f)
			continue
		}
		rows = append(rows, textRow{y: f.Y, fragments: []Fragment{f}})
	}

	for i := range rows {
		row := &rows[i]
		sort.SliceStable(row.fragments, func(a, b int) bool {
			return row.fragments[a].X < row.fragments[b].X
		})
		parts := make([]string, len(row.fragments))
		for j, f := range row.fragments {
			parts[j] = f.Text
		}
		row.text = strings.Join(parts, " ")
	}
	return rows
}

// headerWords is the vocabulary a column-header row is recognized by.
var headerWords = []string{
	"date", "description", "amount", "debit", "credit",
	"withdrawal", "withdrawals", "deposit", "deposits",
	"balance", "transaction", "charges", "payments", "dr", "cr",
}

// headerScanRows limits how deep into the page the header search goes.
const headerScanRows = 30

var (
	debitHeaderRe  = regexp.MustCompile(`withdrawal|withdrawals|debit|charge|charges|\bdr\b`)
	creditHeaderRe = regexp.MustCompile(`deposit|deposits|credit|\bcr\b|payments`)
	amountHeaderRe = regexp.MustCompile(`^amount$`)
	balanceRe      = regexp.MustCompile(`balance`)
)

// columns records the x positions of semantically known statement columns.
type columns struct {
	debitX, creditX, amountX, balanceX         float64
	hasDebit, hasCredit, hasAmount, hasBalance bool
}

// detectColumns scans the first rows of a page for a header row (two or
// more vocabulary hits) and records where the debit, credit, amount, and
// balance labels sit. Returns nil when no header row qualifies; extraction
// then falls back to positional heuristics.
func detectColumns(rows []textRow) *columns {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for _, row := range rows[:limit] {
		lower := strings.ToLower(row.text)
		hits := 0
		for _, w := range headerWords {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		if hits < 2 {
			continue
		}

		var cols columns
		for _, f := range row.fragments {
			t := strings.ToLower(strings.TrimSpace(f.Text))
			switch {
			case debitHeaderRe.MatchString(t):
				cols.debitX, cols.hasDebit = f.X, true
			case creditHeaderRe.MatchString(t):
				cols.creditX, cols.hasCredit = f.X, true
			case amountHeaderRe.MatchString(t):
				cols.amountX, cols.hasAmount = f.X, true
			case balanceRe.MatchString(t):
				cols.balanceX, cols.hasBalance = f.X, true
			}
		}
		if cols.hasDebit || cols.hasCredit || cols.hasAmount {
			return &cols
		}
	}
	return nil
}

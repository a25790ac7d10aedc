// Package pdfparse extracts transactions from text-based PDF bank
// statements. It clusters positioned text fragments into visual rows,
// detects column semantics from header rows, and parses each candidate row
// for a date and amount, filtering out disclaimer and summary text.
//
// Scanned or image-only PDFs produce no text fragments and report an error.
package pdfparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/institution"
	"github.com/glei1339/FinLens/internal/model"
)

// Fragment is one positioned text item from a PDF page, with y already
// converted to top-down screen orientation.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// Page is the positioned text of one PDF page.
type Page []Fragment

// Statement is one parsed PDF statement. PageText and
// HasDebitCreditColumns feed the statement-level sign correction decision,
// which the caller applies across the batch.
type Statement struct {
	Institution           string
	AccountLast4          string
	PageText              string
	HasDebitCreditColumns bool
	Transactions          []model.Transaction
}

var accountLast4Patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:account|card)\s+ending\s+in\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)account\s+(?:number|no\.?|#)[:\s]*[\dxX*•-]*(\d{4})\b`),
	regexp.MustCompile(`(?i)ending\s+(?:in\s+)?(\d{4})\b`),
}

func accountLast4FromText(text string) string {
	for _, re := range accountLast4Patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractStatement runs layout extraction over already-positioned page
// fragments. On zero surviving transactions it returns both the statement
// (whose PageText callers may hand to an AI fallback) and an error naming
// the condition.
func ExtractStatement(fileName string, pages []Page) (*Statement, error) {
	st := &Statement{}
	var pageTexts []string

	for _, page := range pages {
		if len(page) == 0 {
			continue
		}
		rows := groupIntoRows(page)

		rowTexts := make([]string, len(rows))
		for i, r := range rows {
			rowTexts[i] = r.text
		}
		pageTexts = append(pageTexts, strings.Join(rowTexts, " "))

		cols := detectColumns(rows)
		if cols != nil && (cols.hasDebit || cols.hasCredit) {
			st.HasDebitCreditColumns = true
		}

		for _, row := range rows {
			date, description, amount, ok := parseRow(row, cols)
			if !ok {
				continue
			}
			st.Transactions = append(st.Transactions, model.Transaction{
				Date:        date,
				Description: description,
				Amount:      amount,
			})
		}
	}

	st.PageText = strings.Join(pageTexts, " ")
	st.Institution = institution.FromText(st.PageText, fileName)
	st.AccountLast4 = accountLast4FromText(st.PageText)

	// Safety net: re-check descriptions that survived row parsing, then
	// drop rows extracted twice (overlapping fragments on some layouts).
	kept := st.Transactions[:0]
	seen := make(map[string]bool)
	for _, t := range st.Transactions {
		if isNonTransactionRow(t.Description) || looksLikeDisclaimer(t.Description) {
			continue
		}
		key := fmt.Sprintf("%s|%s|%.2f", t.Date, t.Description, t.Amount)
		if seen[key] {
			continue
		}
		seen[key] = true
		t.ID = len(kept)
		t.Source = fileName
		t.Institution = st.Institution
		t.AccountLast4 = st.AccountLast4
		kept = append(kept, t)
	}
	st.Transactions = kept

	if len(st.Transactions) == 0 {
		return st, common.NewUserError(
			fmt.Sprintf("no transactions found in %s: the layout may be unusual or the file may be password-protected", fileName),
			common.ErrNoTransactions,
		)
	}
	return st, nil
}

// Parse reads PDF bytes and extracts the statement.
func Parse(fileName string, data []byte) (*Statement, error) {
	pages, err := ReadPages(data)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not read %s: the file may be corrupt or password-protected", fileName),
			err,
		)
	}
	return ExtractStatement(fileName, pages)
}

// Package csvparse detects known bank CSV layouts and normalizes their rows
// into transactions with the expense-negative sign convention.
package csvparse

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/institution"
	"github.com/glei1339/FinLens/internal/model"
)

// Statement is one parsed CSV export.
type Statement struct {
	Institution  string
	Format       Format
	Transactions []model.Transaction
}

var amountJunkRe = regexp.MustCompile(`[^0-9.\-]`)

// parseAmount mirrors the lenient number handling banks require: currency
// symbols, commas and stray text are stripped before parsing, and anything
// unparseable becomes 0.
func parseAmount(s string) float64 {
	cleaned := amountJunkRe.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

// csvRow pairs one record with the normalized header row it was read under.
type csvRow struct {
	headers []string
	values  []string
}

// get returns the trimmed cell under an exact header name.
func (r csvRow) get(key string) string {
	for i, h := range r.headers {
		if h == key && i < len(r.values) {
			return strings.TrimSpace(r.values[i])
		}
	}
	return ""
}

// find returns the trimmed cell under the first header containing any of the
// given substrings.
func (r csvRow) find(substrings ...string) string {
	for i, h := range r.headers {
		for _, sub := range substrings {
			if strings.Contains(h, sub) {
				if i < len(r.values) {
					return strings.TrimSpace(r.values[i])
				}
				return ""
			}
		}
	}
	return ""
}

func (r csvRow) hasHeader(substrings ...string) bool {
	for _, h := range r.headers {
		for _, sub := range substrings {
			if strings.Contains(h, sub) {
				return true
			}
		}
	}
	return false
}

// accountLast4 pulls the last four digits from any card/account number
// column present in the row.
func (r csvRow) accountLast4() string {
	raw := r.find("card no", "account number", "acct")
	if raw == "" {
		return ""
	}
	digits := strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, raw)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

var creditTypeRe = regexp.MustCompile(`(?i)credit|payment|return|refund`)

// normalizeRow extracts (date, description, amount) from one record using
// the detected format's column and sign conventions.
func normalizeRow(row csvRow, format Format) (date, description string, amount float64) {
	switch format {
	case FormatChaseChecking:
		// The Details column is CREDIT, DEBIT, or DSLIP (deposit slip). The
		// raw amount's own sign is unreliable on this export, so it is
		// discarded and rebuilt from Details.
		date = row.get("posting date")
		description = row.get("description")
		abs := math.Abs(parseAmount(row.get("amount")))
		details := strings.ToUpper(row.get("details"))
		if details == "CREDIT" || details == "DSLIP" {
			amount = abs
		} else {
			amount = -abs
		}

	case FormatChaseCreditCard:
		// Purchases are exported as positive figures. Negate them so
		// expenses come out negative, keeping credits (payments, returns)
		// positive via the Type column.
		date = row.get("transaction date")
		if date == "" {
			date = row.get("date")
		}
		description = row.get("description")
		abs := math.Abs(parseAmount(row.get("amount")))
		if creditTypeRe.MatchString(row.get("type")) {
			amount = abs
		} else {
			amount = -abs
		}

	case FormatCapitalOne:
		date = row.get("transaction date")
		if date == "" {
			date = row.get("posted date")
		}
		description = row.get("description")
		debit := parseAmount(row.get("debit"))
		credit := parseAmount(row.get("credit"))
		if credit > 0 {
			amount = credit
		} else {
			amount = -debit
		}

	case FormatBankOfAmerica:
		date = row.get("posted date")
		description = row.get("payee")
		amount = parseAmount(row.get("amount"))

	case FormatWellsFargo:
		// Positional: [date, amount, *, *, description]
		v := row.values
		at := func(i int) string {
			if i < len(v) {
				return strings.TrimSpace(v[i])
			}
			return ""
		}
		date = at(0)
		amount = parseAmount(at(1))
		for _, i := range []int{4, 3, 2} {
			if at(i) != "" {
				description = at(i)
				break
			}
		}

	default: // FormatGeneric
		date = row.find("date")
		description = row.find("desc", "payee", "memo", "narration", "details", "particular")
		if raw := row.find("amount", "amt"); raw != "" || row.hasHeader("amount", "amt") {
			amount = parseAmount(raw)
		} else {
			debit := parseAmount(row.find("debit", "withdrawal"))
			credit := parseAmount(row.find("credit", "deposit"))
			if credit > 0 {
				amount = credit
			} else {
				amount = -debit
			}
		}
	}
	return date, description, amount
}

// Parse reads a CSV export and returns its normalized transactions.
// Transaction IDs are assigned 0..n-1 within the statement; callers merging
// multiple statements reassign them.
func Parse(fileName string, data []byte) (*Statement, error) {
	reader := csv.NewReader(bytes.NewReader(stripBOM(data)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fileName, err)
		}
		if isEmptyRecord(rec) {
			continue
		}
		records = append(records, rec)
	}
	if len(records) < 2 {
		return nil, common.NewUserError(fmt.Sprintf("no data found in %s", fileName), common.ErrNoData)
	}

	headers := normalizeHeaders(records[0])
	format := DetectFormat(records[0])

	inst := format.Institution()
	if inst == institution.Unknown {
		inst = institution.FromFilename(fileName)
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := csvRow{headers: headers, values: rec}
		date, description, amount := normalizeRow(row, format)
		if description == "" {
			continue
		}
		txns = append(txns, model.Transaction{
			ID:           len(txns),
			Date:         date,
			Description:  description,
			Amount:       amount,
			Source:       fileName,
			Institution:  inst,
			AccountLast4: row.accountLast4(),
		})
	}
	if len(txns) == 0 {
		return nil, common.NewUserError(fmt.Sprintf("no transactions found in %s", fileName), common.ErrNoData)
	}

	return &Statement{Institution: inst, Format: format, Transactions: txns}, nil
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

func isEmptyRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

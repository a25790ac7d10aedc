package ai

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

var (
	lineNumberRe = regexp.MustCompile(`^\d+\.\s*`)
	codeFenceRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// parseSignResponse turns a reply like "DPPDP" into per-transaction deposit
// flags. Anything that is not a D reads as payment, and a short reply leaves
// the remaining transactions as payments too.
func parseSignResponse(resp string, n int) []bool {
	letters := make([]rune, 0, n)
	for _, r := range strings.ToUpper(resp) {
		if r == 'D' || r == 'P' {
			letters = append(letters, r)
		}
	}
	deposits := make([]bool, n)
	for i := 0; i < n && i < len(letters); i++ {
		deposits[i] = letters[i] == 'D'
	}
	return deposits
}

// parseCategoryResponse maps one reply line to each transaction in the batch.
// Lines are matched against the allowed category list case-insensitively;
// anything unrecognized falls back to "Uncategorized" when that is an allowed
// category, otherwise to the first category in the list.
func parseCategoryResponse(resp string, n int, categories []string) []string {
	fallback := categories[0]
	byLower := make(map[string]string, len(categories))
	for _, c := range categories {
		byLower[strings.ToLower(c)] = c
		if strings.EqualFold(c, "Uncategorized") {
			fallback = c
		}
	}

	var lines []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(lineNumberRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			lines = append(lines, line)
		}
	}

	out := make([]string, n)
	for i := range out {
		out[i] = fallback
		if i < len(lines) {
			if c, ok := byLower[strings.ToLower(lines[i])]; ok {
				out[i] = c
			}
		}
	}
	return out
}

// parseStatementResponse extracts the JSON object from an extraction reply.
// Models sometimes wrap the object in a code fence or surround it with prose,
// so both are stripped before decoding.
func parseStatementResponse(resp string) (*Extraction, error) {
	body := strings.TrimSpace(resp)
	if m := codeFenceRe.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	var wire struct {
		Institution  string           `json:"institution"`
		AccountLast4 string           `json:"accountLast4"`
		Transactions []map[string]any `json:"transactions"`
	}
	if err := json.Unmarshal([]byte(body), &wire); err != nil {
		m := jsonObjectRe.FindString(body)
		if m == "" {
			return nil, err
		}
		if err := json.Unmarshal([]byte(m), &wire); err != nil {
			return nil, err
		}
	}

	ex := &Extraction{
		Institution:  strings.TrimSpace(wire.Institution),
		AccountLast4: lastFourDigits(wire.AccountLast4),
	}
	for _, raw := range wire.Transactions {
		t := model.Transaction{
			Date:        coerceString(raw["date"]),
			Description: coerceString(raw["description"]),
			Amount:      coerceFloat(raw["amount"]),
		}
		if t.Date == "" && t.Description == "" && t.Amount == 0 {
			continue
		}
		if t.Description == "" {
			t.Description = "Unknown"
		}
		t.ID = len(ex.Transactions)
		ex.Transactions = append(ex.Transactions, t)
	}
	return ex, nil
}

func lastFourDigits(s string) string {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return digits
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(n, ",", "")), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

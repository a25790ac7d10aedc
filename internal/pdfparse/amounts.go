package pdfparse

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// datePatterns are tried in order of specificity. The year-less MM/DD form
// comes after the full forms since many card statements omit the year.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`),
	regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
	regexp.MustCompile(`\b(\d{1,2}-\d{1,2}-\d{2,4})\b`),
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2})\b`),
	regexp.MustCompile(`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},?\s*\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})\b`),
}

func tryExtractDate(text string) string {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// amountRe recognizes money-shaped tokens: optional minus or parenthesized
// negative, optional dollar sign, thousands separators, two decimals.
var amountRe = regexp.MustCompile(`(\(\$?(\d{1,3}(?:,\d{3})*\.\d{2})\))|(-?\$?(\d{1,3}(?:,\d{3})*\.\d{2}))`)

// amountToken is one money-shaped token with the x position it was found at.
type amountToken struct {
	raw   string
	value float64
	x     float64
}

// extractAmounts pulls every money token out of a row's fragments,
// preserving each token's x position, sorted left to right. Parenthesized
// amounts are negative.
func extractAmounts(fragments []Fragment) []amountToken {
	var tokens []amountToken
	for _, f := range fragments {
		for _, m := range amountRe.FindAllStringSubmatch(f.Text, -1) {
			switch {
			case m[1] != "":
				v, _ := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
				tokens = append(tokens, amountToken{raw: m[1], value: -v, x: f.X})
			case m[3] != "":
				v, _ := strconv.ParseFloat(strings.ReplaceAll(m[4], ",", ""), 64)
				if strings.HasPrefix(strings.TrimSpace(m[3]), "-") {
					v = -v
				}
				tokens = append(tokens, amountToken{raw: m[3], value: v, x: f.X})
			}
		}
	}
	sort.SliceStable(tokens, func(i, j int) bool { return tokens[i].x < tokens[j].x })
	return tokens
}

// xTolerance is the generous horizontal distance within which an amount
// token is considered to belong to a detected column.
const xTolerance = 90.0

// paymentRowRe matches payment/debit vocabulary used by statements that
// list payments as positive figures under payment-specific sections.
var paymentRowRe = regexp.MustCompile(`(?i)electronic pmt|pmt-web|pmt web|ach debit|billpay|bill pay|withdrawal|payment to`)

var (
	collapseRe  = regexp.MustCompile(`\s+`)
	trimPunctRe = regexp.MustCompile(`^[\W_]+|[\W_]+$`)
)

// parseRow turns one visual row into (date, description, amount), or
// ok=false when the row is not a transaction.
func parseRow(row textRow, cols *columns) (date, description string, amount float64, ok bool) {
	if isNonTransactionRow(row.text) || looksLikeDisclaimer(row.text) {
		return "", "", 0, false
	}

	date = tryExtractDate(row.text)
	if date == "" {
		return "", "", 0, false
	}

	tokens := extractAmounts(row.fragments)
	if len(tokens) == 0 {
		return "", "", 0, false
	}

	amount, resolved := resolveAmount(tokens, cols)
	if !resolved {
		return "", "", 0, false
	}

	description = buildDescription(row.text, tokens)
	if len(description) < 2 {
		return "", "", 0, false
	}
	if isNonTransactionRow(description) || looksLikeDisclaimer(description) {
		return "", "", 0, false
	}

	// Some statements list payments as positive figures under a payments
	// section; the row vocabulary identifies those.
	if amount > 0 && paymentRowRe.MatchString(row.text) {
		amount = -amount
	}

	return date, description, amount, true
}

// resolveAmount picks the transaction amount from a row's money tokens,
// using detected column positions when available and positional heuristics
// otherwise.
func resolveAmount(tokens []amountToken, cols *columns) (float64, bool) {
	if cols != nil {
		if cols.hasDebit || cols.hasCredit {
			if cols.hasDebit {
				if t, found := nearestWithin(tokens, cols.debitX); found {
					return -math.Abs(t.value), true
				}
			}
			if cols.hasCredit {
				if t, found := nearestWithin(tokens, cols.creditX); found {
					return math.Abs(t.value), true
				}
			}
		} else if cols.hasAmount {
			if t, found := nearestWithin(tokens, cols.amountX); found {
				return t.value, true
			}
		}
		if cols.hasBalance {
			var rest []amountToken
			for _, t := range tokens {
				if math.Abs(t.x-cols.balanceX) > xTolerance {
					rest = append(rest, t)
				}
			}
			if len(rest) > 0 {
				return rest[0].value, true
			}
		}
	}

	if len(tokens) == 1 {
		return tokens[0].value, true
	}
	// Assume the rightmost token is a running balance and discard it,
	// preferring an explicitly negative token among the rest.
	candidates := tokens[:len(tokens)-1]
	for _, t := range candidates {
		if t.value < 0 {
			return t.value, true
		}
	}
	return candidates[0].value, true
}

// nearestWithin returns the token closest to x, if any lies within the
// column tolerance.
func nearestWithin(tokens []amountToken, x float64) (amountToken, bool) {
	best := -1
	for i, t := range tokens {
		d := math.Abs(t.x - x)
		if d >= xTolerance {
			continue
		}
		if best < 0 || d < math.Abs(tokens[best].x-x) {
			best = i
		}
	}
	if best < 0 {
		return amountToken{}, false
	}
	return tokens[best], true
}

// buildDescription strips date and amount substrings from the row text and
// tidies what remains.
func buildDescription(text string, tokens []amountToken) string {
	desc := text
	for _, re := range datePatterns {
		desc = re.ReplaceAllString(desc, " ")
	}
	for _, t := range tokens {
		desc = strings.ReplaceAll(desc, t.raw, " ")
	}
	desc = collapseRe.ReplaceAllString(desc, " ")
	desc = trimPunctRe.ReplaceAllString(desc, "")
	return strings.TrimSpace(desc)
}

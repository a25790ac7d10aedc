// Package categorize assigns spending categories to transactions using a
// fixed, priority-ordered keyword table, detects statements whose amount
// signs are inverted, and applies user-defined category rules on top.
package categorize

import (
	"regexp"
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

// prefixRe strips payment-processor and bank prefixes that carry no merchant
// information, so "SQ *BLUE BOTTLE" and "TST* BLUE BOTTLE" normalize to the
// same merchant text.
var prefixRe = regexp.MustCompile(`(?i)^(pos purchase|pos debit|pos credit|pos transaction|checkcard|check card|debit card purchase|debit purchase|credit card purchase|purchase authorized on \S+|ach payment|ach debit|ach credit|ach deposit|ach transfer|electronic payment|electronic transfer|e-payment|online purchase|online payment|online banking transfer|recurring payment|automatic payment|autopay|auto pay|preauth|pre-auth|pre auth|preauthorized|web payment|web pmnt|mobile payment|contactless|bill payment|bill pay|billpay|sq \*|sq\*|tst\*|tst \*|bt\*|bt \*|pp \*|paypal \*|aplpay |apl pay )\s*[-–—#*:;,.]?\s*`)

// trailingRefRe drops trailing reference or card numbers appended by some
// banks ("STARBUCKS #1234 5551234567").
var trailingRefRe = regexp.MustCompile(`\s+#?\d{4,}\s*$`)

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// normalize lowercases a raw statement description and strips processor
// prefixes, trailing reference numbers, and repeated whitespace.
func normalize(description string) string {
	s := strings.ToLower(strings.TrimSpace(description))
	s = prefixRe.ReplaceAllString(s, "")
	s = trailingRefRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// containsBounded reports whether term occurs in s with non-alphanumeric
// characters (or string edges) on both sides.
func containsBounded(s, term string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], term)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isWordChar(s[i-1])
		after := i+len(term) == len(s) || !isWordChar(s[i+len(term)])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func (r keywordRule) matches(normalized string) bool {
	for _, kw := range r.plain {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	for _, kw := range r.bounded {
		if containsBounded(normalized, kw) {
			return true
		}
	}
	return false
}

// Categorize returns the category for a transaction description. The amount
// guards against miscategorizing expenses as Income: for negative amounts
// the Income rule is skipped on the first pass and consulted only if no
// other category matched. Pass 0 when the amount is unknown.
func Categorize(description string, amount float64) string {
	normalized := normalize(description)
	if normalized == "" {
		return model.Uncategorized
	}
	deferIncome := amount < 0
	for _, r := range rules {
		if deferIncome && r.category == "Income" {
			continue
		}
		if r.matches(normalized) {
			return r.category
		}
	}
	if deferIncome {
		for _, r := range rules {
			if r.category == "Income" && r.matches(normalized) {
				return r.category
			}
		}
	}
	return model.Uncategorized
}

// CategorizeAll fills in categories for transactions that do not have one
// yet. Transactions already carrying a category (from the user, a rule, or
// an earlier pass) are left untouched, which makes the pass idempotent.
func CategorizeAll(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		if t.Category == "" || t.Category == model.Uncategorized {
			t.Category = Categorize(t.Description, t.Amount)
		}
		out[i] = t
	}
	return out
}

package categorize

import (
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

// ApplyUserRules overlays user-defined rules on top of automatic
// categorization. Rule text is matched case-insensitively as a substring of
// the raw description; rules are scanned in list order and the first match
// wins. Rules with empty text or category are skipped. Transactions matching
// no rule keep their existing category.
func ApplyUserRules(txns []model.Transaction, rules []model.Rule) []model.Transaction {
	if len(txns) == 0 || len(rules) == 0 {
		return txns
	}
	active := make([]model.Rule, 0, len(rules))
	for _, r := range rules {
		text := strings.ToLower(strings.TrimSpace(r.Text))
		if text == "" || strings.TrimSpace(r.Category) == "" {
			continue
		}
		r.Text = text
		active = append(active, r)
	}
	if len(active) == 0 {
		return txns
	}
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		desc := strings.ToLower(t.Description)
		for _, r := range active {
			if strings.Contains(desc, r.Text) {
				t.Category = r.Category
				break
			}
		}
		out[i] = t
	}
	return out
}

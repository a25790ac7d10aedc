package pdfparse

import (
	"math"
	"regexp"
	"strings"
)

// nonTransactionPhrases mark rows that carry a date or amount token but are
// disclaimers, column headers, or instructional text rather than activity.
// Checked against both the raw row text and the stripped description.
var nonTransactionPhrases = []string{
	"concerning this debit should be made before",
	"this date may not be the same date your bank",
	"available pay over time limit",
	"payment due date of",
	"you may have to pay a late fee",
	"payments/credits",
	"you may have to pay",
	"late fee of",
	"minimum payment due",
	"statement closing date",
	"see your agreement for",
	"if you have questions",
	"new balance available",
	"available and pending",
	"pending as of",
	" and payments/credits",
	"payment due date of ,",
	"same date your bank",
	"as of .",
	"beginning balance",
	"ending balance",
}

// disclaimerWords commonly appear in instruction text rather than merchant
// names.
var disclaimerWords = map[string]bool{
	"payment": true, "due": true, "date": true, "balance": true,
	"available": true, "pending": true, "fee": true, "late": true,
	"your": true, "bank": true, "same": true, "may": true, "have": true,
	"this": true, "that": true, "and": true, "the": true, "of": true,
	"if": true, "you": true, "see": true, "agreement": true, "for": true,
	"minimum": true, "statement": true, "closing": true, "pay": true,
	"over": true, "time": true, "limit": true, "concerning": true,
	"debit": true, "should": true, "made": true, "before": true,
	"not": true, "be": true, "payments": true, "credits": true,
}

func isNonTransactionRow(text string) bool {
	if len(text) < 10 {
		return false
	}
	lower := strings.ToLower(text)
	for _, p := range nonTransactionPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

var (
	startFragmentRe   = regexp.MustCompile(`^and\s|^of\s|^[a-z]\s*\.\s`)
	brokenDateRe      = regexp.MustCompile(`^\.\s*this\s+date|\s+\.\s*this\s+date`)
	trailingAsOfRe    = regexp.MustCompile(`\s+as\s+of\s*\.?\s*$`)
	trailingBankRe    = regexp.MustCompile(`your\s+bank\s*\.?\s*$`)
	brokenCommaRe     = regexp.MustCompile(`,\s*you\s+may\s|\s+of\s*,\s*`)
	headerLabelRe     = regexp.MustCompile(`^(new\s+)?balance\s+available\s+and\s+pending`)
	dueDateOfCommaRe  = regexp.MustCompile(`payment\s+due\s+date\s+of\s*,`)
	nonLetterStripRe  = regexp.MustCompile(`[^a-z]`)
)

// looksLikeDisclaimer reports whether text reads like wrapped disclaimer or
// instruction copy rather than a merchant/payee line. Real transactions
// name a merchant; disclaimers are sentence-shaped and built mostly from
// boilerplate vocabulary.
func looksLikeDisclaimer(text string) bool {
	if len(text) < 15 {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(lower)

	if startFragmentRe.MatchString(lower) || brokenDateRe.MatchString(lower) {
		return true
	}
	if trailingAsOfRe.MatchString(lower) || trailingBankRe.MatchString(lower) {
		return true
	}
	if brokenCommaRe.MatchString(lower) {
		return true
	}

	if len(words) >= 4 {
		count := 0
		for _, w := range words {
			if disclaimerWords[nonLetterStripRe.ReplaceAllString(w, "")] {
				count++
			}
		}
		threshold := math.Min(4, math.Ceil(float64(len(words))*0.6))
		if float64(count) >= threshold {
			return true
		}
	}

	return headerLabelRe.MatchString(lower) || dueDateOfCommaRe.MatchString(lower)
}

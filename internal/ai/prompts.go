package ai

import (
	"fmt"
	"strings"

	"github.com/glei1339/FinLens/internal/model"
)

const (
	// signBatchSize bounds the deposit/payment prompt so the reply fits in
	// one short line of letters.
	signBatchSize = 25
	// categoryBatchSize bounds the categorization prompt.
	categoryBatchSize = 20
	// maxStatementChars caps how much raw PDF text is sent for extraction.
	maxStatementChars = 80000
)

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n]
	}
	return s
}

func numberedLines(batch []model.Transaction, maxDesc int) string {
	var sb strings.Builder
	for i, t := range batch {
		fmt.Fprintf(&sb, "%d. %q Amount: %g\n", i+1, truncate(t.Description, maxDesc), t.Amount)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func buildSignPrompt(batch []model.Transaction) string {
	return fmt.Sprintf(`You are a bank transaction classifier. For each transaction below, decide if it is a DEPOSIT (money in: salary, refund, transfer in, interest, etc.) or PAYMENT (money out: purchase, bill, fee, transfer out, etc.). Use the description and amount to decide.

Transactions:
%s

Reply with exactly one letter per transaction in order, on a single line with no spaces: D for DEPOSIT, P for PAYMENT. Example: DPPDP`, numberedLines(batch, 120))
}

func buildCategoryPrompt(batch []model.Transaction, categories []string) string {
	return fmt.Sprintf(`Assign exactly one category to each transaction. Use ONLY these categories (copy the name exactly): %s

Transactions:
%s

Reply with exactly one category per line, in order (line 1 = transaction 1, etc.). Use only category names from the list above. If unsure, use "Uncategorized".`, strings.Join(categories, ", "), numberedLines(batch, 100))
}

func buildExtractionPrompt(pageText string) string {
	return fmt.Sprintf(`Below is raw text from a bank or credit card statement PDF.

1) From the statement header/summary (top of first page, logo area, or account summary), identify:
- institution: the bank or card issuer that produced this statement. Use the exact issuer name (e.g. "American Express", "TD Bank", "Chase", "Bank of America"). Look for the company name, logo text, or website (e.g. americanexpress.com -> American Express). Do NOT use merchant/payee names from transactions.
- accountLast4: the last 4 digits of the account/card number only. Look for "Primary Account #: 435-9511742" (-> 1742), "Account # 435-9511742", or "Account Ending 5-42005" (-> last 4 of 42005 = 2005). Use only the statement's own account identifier; ignore reference numbers, transaction IDs, or other numbers. If unclear, use "".

2) Extract every individual transaction into an array. For each transaction:
- date: transaction date in YYYY-MM-DD or MM/DD/YYYY
- description: merchant or payee name (short)
- amount: number. CRITICAL sign: deposits/credits (money in) = positive; payments/debits/withdrawals (money out) = negative. Sections like "Electronic Payments", "ACH DEBIT", "PMT-WEB", "Bill Pay" = negative amounts.

IMPORTANT - do NOT include these as transactions:
- Beginning Balance, Ending Balance, Opening Balance, Closing Balance, Starting Balance
- Account Summary totals, subtotals, or running balance lines
- Column headers, section headers, or any row that summarises a period rather than describing a single transaction

Reply with a single JSON object only, no other text:
{"institution":"TD Bank","accountLast4":"1742","transactions":[{"date":"2025-12-01","description":"AMAZON","amount":15.54},{"date":"2025-12-01","description":"SANTANDER BILLPAY","amount":-624.59}]}

Statement text:
---
%s
---`, truncate(pageText, maxStatementChars))
}

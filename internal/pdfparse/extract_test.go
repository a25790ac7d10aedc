package pdfparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glei1339/FinLens/internal/common"
)

func TestGroupIntoRows(t *testing.T) {
	page := Page{
		{Text: "second", X: 40, Y: 102.5},
		{Text: "row", X: 120, Y: 200},
		{Text: "first", X: 40, Y: 100},
		{Text: "third", X: 40, Y: 200},
	}

	rows := groupIntoRows(page)
	require.Len(t, rows, 2)
	assert.Equal(t, "first second", rows[0].text, "fragments within tolerance share a row, sorted by x")
	assert.Equal(t, "third row", rows[1].text)
}

func TestExtractStatementDebitCreditColumns(t *testing.T) {
	pages := []Page{{
		{Text: "Date", X: 40, Y: 50},
		{Text: "Description", X: 120, Y: 50},
		{Text: "Withdrawals", X: 280, Y: 50},
		{Text: "Deposits", X: 380, Y: 50},
		{Text: "Balance", X: 490, Y: 50},

		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "CHECK CARD GROCERY STORE", X: 120, Y: 80},
		{Text: "45.23", X: 280, Y: 80},
		{Text: "1,200.00", X: 490, Y: 80},

		{Text: "01/06/2024", X: 40, Y: 110},
		{Text: "PAYROLL DEPOSIT ACME", X: 120, Y: 110},
		{Text: "2,500.00", X: 380, Y: 110},
		{Text: "3,700.00", X: 490, Y: 110},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)

	assert.True(t, st.HasDebitCreditColumns)
	require.Len(t, st.Transactions, 2)

	assert.Equal(t, "CHECK CARD GROCERY STORE", st.Transactions[0].Description)
	assert.Equal(t, -45.23, st.Transactions[0].Amount, "withdrawal column is negative")
	assert.Equal(t, "01/05/2024", st.Transactions[0].Date)

	assert.Equal(t, "PAYROLL DEPOSIT ACME", st.Transactions[1].Description)
	assert.Equal(t, 2500.00, st.Transactions[1].Amount, "deposit column is positive")
}

func TestExtractStatementSingleAmountColumn(t *testing.T) {
	pages := []Page{{
		{Text: "Date", X: 40, Y: 50},
		{Text: "Description", X: 120, Y: 50},
		{Text: "Amount", X: 400, Y: 50},

		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "STARBUCKS STORE", X: 120, Y: 80},
		{Text: "-5.75", X: 400, Y: 80},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)
	assert.False(t, st.HasDebitCreditColumns)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, -5.75, st.Transactions[0].Amount, "signed amount column used as-is")
	assert.Equal(t, "STARBUCKS STORE", st.Transactions[0].Description)
}

func TestExtractStatementNoColumnsFallback(t *testing.T) {
	// No header row: the rightmost token is assumed to be a running
	// balance; an explicitly negative token wins among the rest.
	pages := []Page{{
		{Text: "01/05/2024", X: 40, Y: 100},
		{Text: "STARBUCKS STORE", X: 120, Y: 100},
		{Text: "-5.75", X: 300, Y: 100},
		{Text: "1,000.00", X: 450, Y: 100},

		{Text: "01/07/2024", X: 40, Y: 130},
		{Text: "COFFEE SHOP", X: 120, Y: 130},
		{Text: "4.50", X: 300, Y: 130},
		{Text: "995.50", X: 450, Y: 130},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 2)
	assert.Equal(t, -5.75, st.Transactions[0].Amount)
	assert.Equal(t, 4.50, st.Transactions[1].Amount, "leftmost token when none are negative")
}

func TestExtractStatementRejectsDisclaimerRows(t *testing.T) {
	pages := []Page{{
		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "STARBUCKS STORE", X: 120, Y: 80},
		{Text: "-5.75", X: 400, Y: 80},

		// Carries a date-shaped and amount-shaped token but is wrapped
		// disclaimer copy, not activity.
		{Text: "This date may not be the same date your bank posts the debit", X: 40, Y: 200},
		{Text: "concerning this debit should be made before 01/05/2024 100.00", X: 40, Y: 203},

		{Text: "Beginning Balance 01/01/2024", X: 40, Y: 240},
		{Text: "1,000.00", X: 400, Y: 240},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, "STARBUCKS STORE", st.Transactions[0].Description)
}

func TestExtractStatementPaymentRowOverride(t *testing.T) {
	pages := []Page{{
		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "ELECTRONIC PMT-WEB ACME PROPERTY", X: 120, Y: 80},
		{Text: "1,500.00", X: 400, Y: 80},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, -1500.00, st.Transactions[0].Amount, "payment vocabulary forces the sign negative")
}

func TestExtractStatementDeduplicates(t *testing.T) {
	row := Page{
		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "STARBUCKS STORE", X: 120, Y: 80},
		{Text: "-5.75", X: 400, Y: 80},
	}

	st, err := ExtractStatement("statement.pdf", []Page{row, row})
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1, "identical rows collapse to one")
	assert.Equal(t, 0, st.Transactions[0].ID)
}

func TestExtractStatementMetadata(t *testing.T) {
	pages := []Page{{
		{Text: "JPMorgan Chase Bank, N.A.", X: 40, Y: 30},
		{Text: "Account Number: XXXX-XXXX-1234", X: 40, Y: 45},

		{Text: "01/05/2024", X: 40, Y: 80},
		{Text: "STARBUCKS STORE", X: 120, Y: 80},
		{Text: "-5.75", X: 400, Y: 80},
	}}

	st, err := ExtractStatement("statement.pdf", pages)
	require.NoError(t, err)
	assert.Equal(t, "Chase", st.Institution)
	assert.Equal(t, "1234", st.AccountLast4)
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, "Chase", st.Transactions[0].Institution)
	assert.Equal(t, "1234", st.Transactions[0].AccountLast4)
	assert.Equal(t, "statement.pdf", st.Transactions[0].Source)
}

func TestExtractStatementEmpty(t *testing.T) {
	st, err := ExtractStatement("scan.pdf", []Page{{
		{Text: "Monthly Statement Summary", X: 40, Y: 50},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoTransactions)
	require.NotNil(t, st, "statement returned for AI fallback")
	assert.Contains(t, st.PageText, "Monthly Statement Summary")
}

func TestAccountLast4FromText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Account Number: XXXX-XXXX-9912", "9912"},
		{"card ending in 4587", "4587"},
		{"account ending in 1001", "1001"},
		{"no identifiers here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, accountLast4FromText(tt.text), "text %q", tt.text)
	}
}

func TestLooksLikeDisclaimer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "boilerplate heavy sentence",
			text: "payment due date of the statement closing date may have late fee",
			want: true,
		},
		{
			name: "trailing fragment",
			text: "posts the debit to your account your bank",
			want: true,
		},
		{
			name: "merchant line",
			text: "STARBUCKS STORE #123 SEATTLE WA",
			want: false,
		},
		{
			name: "short text never flagged",
			text: "and fee",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeDisclaimer(tt.text))
		})
	}
}

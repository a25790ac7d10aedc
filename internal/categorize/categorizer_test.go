package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glei1339/FinLens/internal/model"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
		amount      float64
	}{
		{
			name:        "coffee chain",
			description: "STARBUCKS STORE #123",
			amount:      -5.75,
			want:        "Food & Dining",
		},
		{
			name:        "streaming service",
			description: "NETFLIX.COM",
			amount:      -15.49,
			want:        "Entertainment",
		},
		{
			name:        "payroll deposit",
			description: "ADP PAYROLL 123456789",
			amount:      2500.00,
			want:        "Income",
		},
		{
			name:        "processor prefix stripped",
			description: "TST* JOES PIZZA NYC",
			amount:      -22.50,
			want:        "Food & Dining",
		},
		{
			name:        "grocery chain",
			description: "WHOLE FOODS MARKET 10234",
			amount:      -84.12,
			want:        "Groceries",
		},
		{
			name:        "uber eats beats uber rides",
			description: "UBER EATS ORDER",
			amount:      -20.00,
			want:        "Food & Dining",
		},
		{
			name:        "uber trip is transportation",
			description: "UBER TRIP HELP.UBER.COM",
			amount:      -14.30,
			want:        "Transportation",
		},
		{
			name:        "legal wins over subscriptions",
			description: "LEGALZOOM.COM",
			amount:      -39.99,
			want:        "Legal",
		},
		{
			name:        "negative amount defers income keywords",
			description: "PAYROLL SERVICE FEE",
			amount:      -50.00,
			want:        "Fees & Charges",
		},
		{
			name:        "positive amount matches income first",
			description: "PAYROLL SERVICE FEE",
			amount:      50.00,
			want:        "Income",
		},
		{
			name:        "income as last resort for negative amounts",
			description: "INTEREST PAYMENT",
			amount:      -1.12,
			want:        "Income",
		},
		{
			name:        "word bounded keyword matches",
			description: "SEARS ROEBUCK 00412",
			amount:      -63.00,
			want:        "Shopping",
		},
		{
			name:        "word bounded keyword rejects substring hit",
			description: "SEARSPORT MARINA",
			amount:      -63.00,
			want:        model.Uncategorized,
		},
		{
			name:        "empty description",
			description: "",
			amount:      -5.00,
			want:        model.Uncategorized,
		},
		{
			name:        "whitespace only description",
			description: "   ",
			amount:      -5.00,
			want:        model.Uncategorized,
		},
		{
			name:        "no keyword match",
			description: "XQZ 9 UNKNOWN MERCHANT",
			amount:      -5.00,
			want:        model.Uncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.description, tt.amount))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "square prefix",
			input: "SQ *BLUE BOTTLE COFFEE",
			want:  "blue bottle coffee",
		},
		{
			name:  "authorized-on prefix with date token",
			input: "PURCHASE AUTHORIZED ON 01/05 KROGER 123",
			want:  "kroger 123",
		},
		{
			name:  "trailing reference number",
			input: "SHELL OIL 57444123456",
			want:  "shell oil",
		},
		{
			name:  "whitespace collapsed",
			input: "TRADER   JOE'S  044",
			want:  "trader joe's 044",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.input))
		})
	}
}

func TestCategorizeAll(t *testing.T) {
	txns := []model.Transaction{
		{Description: "STARBUCKS STORE #123", Amount: -5.75},
		{Description: "NETFLIX.COM", Amount: -15.49, Category: "Subscriptions"},
		{Description: "XQZ UNKNOWN", Amount: -3.00},
	}

	got := CategorizeAll(txns)

	assert.Equal(t, "Food & Dining", got[0].Category)
	assert.Equal(t, "Subscriptions", got[1].Category, "existing category preserved")
	assert.Equal(t, model.Uncategorized, got[2].Category)

	// Idempotent: a second pass changes nothing.
	again := CategorizeAll(got)
	assert.Equal(t, got, again)
}

func TestNeedsSignFlip(t *testing.T) {
	expenses := func(amounts ...float64) []model.Transaction {
		descs := []string{
			"STARBUCKS STORE #123",
			"NETFLIX.COM",
			"SHELL SERVICE STATION",
			"KROGER STORE",
			"CVS PHARMACY",
		}
		txns := make([]model.Transaction, len(amounts))
		for i, a := range amounts {
			txns[i] = model.Transaction{Description: descs[i%len(descs)], Amount: a}
		}
		return txns
	}

	tests := []struct {
		name string
		txns []model.Transaction
		want bool
	}{
		{
			name: "all positive expenses flip",
			txns: expenses(5.75, 15.49, 40.00, 84.12),
			want: true,
		},
		{
			name: "too few expense rows",
			txns: expenses(5.75, 15.49),
			want: false,
		},
		{
			name: "half positive is below threshold",
			txns: expenses(5.75, 15.49, -40.00, -84.12),
			want: false,
		},
		{
			name: "non-expense rows do not count",
			txns: []model.Transaction{
				{Description: "ADP PAYROLL", Amount: 2500},
				{Description: "VENMO PAYMENT", Amount: 120},
				{Description: "ONLINE TRANSFER TO SAVINGS", Amount: 300},
			},
			want: false,
		},
		{
			name: "empty input",
			txns: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsSignFlip(tt.txns))
		})
	}
}

func TestShouldFlip(t *testing.T) {
	flippable := []model.Transaction{
		{Description: "STARBUCKS STORE #123", Amount: 5.75},
		{Description: "NETFLIX.COM", Amount: 15.49},
		{Description: "SHELL SERVICE STATION", Amount: 40.00},
		{Description: "KROGER STORE", Amount: 84.12},
	}

	tests := []struct {
		name  string
		hints StatementHints
		want  bool
	}{
		{
			name:  "no suppression",
			hints: StatementHints{},
			want:  true,
		},
		{
			name:  "debit and credit columns suppress",
			hints: StatementHints{HasDebitCreditColumns: true},
			want:  false,
		},
		{
			name:  "bank section headers suppress",
			hints: StatementHints{PageText: "Total Electronic Deposits $1,234.00"},
			want:  false,
		},
		{
			name:  "chase csv exemption",
			hints: StatementHints{FromCSV: true, Institution: "Chase"},
			want:  false,
		},
		{
			name:  "chase pdf is not exempt",
			hints: StatementHints{Institution: "Chase"},
			want:  true,
		},
		{
			name:  "other csv institutions still flip",
			hints: StatementHints{FromCSV: true, Institution: "Discover"},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldFlip(flippable, tt.hints))
		})
	}
}

func TestHasBankSections(t *testing.T) {
	assert.True(t, HasBankSections("Withdrawals and Debits\nCheck No. Date"))
	assert.True(t, HasBankSections("DEPOSITS AND CREDITS"))
	assert.False(t, HasBankSections("Summary of Account Activity"))
}

func TestFlipSigns(t *testing.T) {
	txns := []model.Transaction{
		{Description: "A", Amount: 5.75},
		{Description: "B", Amount: -2.00},
	}
	got := FlipSigns(txns)
	assert.Equal(t, -5.75, got[0].Amount)
	assert.Equal(t, 2.00, got[1].Amount)
	assert.Equal(t, 5.75, txns[0].Amount, "input not mutated")
}

func TestApplyUserRules(t *testing.T) {
	t.Run("empty transactions", func(t *testing.T) {
		got := ApplyUserRules(nil, []model.Rule{{Text: "netflix", Category: "Entertainment"}})
		assert.Empty(t, got)
	})

	t.Run("empty rules returns input unchanged", func(t *testing.T) {
		txns := []model.Transaction{{Description: "NETFLIX.COM", Category: "Subscriptions"}}
		got := ApplyUserRules(txns, nil)
		assert.Equal(t, txns, got)
	})

	t.Run("rule overrides automatic category", func(t *testing.T) {
		txns := []model.Transaction{{Description: "NETFLIX.COM", Category: "Subscriptions"}}
		got := ApplyUserRules(txns, []model.Rule{{Text: "netflix", Category: "Entertainment"}})
		assert.Equal(t, "Entertainment", got[0].Category)
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		txns := []model.Transaction{{Description: "NETFLIX.COM"}}
		rules := []model.Rule{
			{Text: "netflix", Category: "Entertainment"},
			{Text: ".com", Category: "Shopping"},
		}
		got := ApplyUserRules(txns, rules)
		assert.Equal(t, "Entertainment", got[0].Category)
	})

	t.Run("blank rules are skipped", func(t *testing.T) {
		txns := []model.Transaction{{Description: "NETFLIX.COM", Category: "Subscriptions"}}
		rules := []model.Rule{
			{Text: "   ", Category: "Entertainment"},
			{Text: "netflix", Category: ""},
		}
		got := ApplyUserRules(txns, rules)
		assert.Equal(t, "Subscriptions", got[0].Category)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		txns := []model.Transaction{{Description: "Netflix.Com"}}
		got := ApplyUserRules(txns, []model.Rule{{Text: "NETFLIX", Category: "Entertainment"}})
		assert.Equal(t, "Entertainment", got[0].Category)
	})
}

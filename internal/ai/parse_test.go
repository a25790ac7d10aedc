package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignResponse(t *testing.T) {
	tests := []struct {
		name string
		resp string
		n    int
		want []bool
	}{
		{
			name: "clean single line",
			resp: "DPPDP",
			n:    5,
			want: []bool{true, false, false, true, false},
		},
		{
			name: "lowercase with surrounding prose",
			resp: "Here you go: d p d",
			n:    3,
			want: []bool{true, false, true},
		},
		{
			name: "short reply defaults remainder to payment",
			resp: "D",
			n:    3,
			want: []bool{true, false, false},
		},
		{
			name: "empty reply",
			resp: "",
			n:    2,
			want: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSignResponse(tt.resp, tt.n))
		})
	}
}

func TestParseCategoryResponse(t *testing.T) {
	categories := []string{"Food & Dining", "Groceries", "Uncategorized"}

	tests := []struct {
		name string
		resp string
		n    int
		want []string
	}{
		{
			name: "plain lines",
			resp: "Groceries\nFood & Dining",
			n:    2,
			want: []string{"Groceries", "Food & Dining"},
		},
		{
			name: "numbered and case-insensitive",
			resp: "1. groceries\n2. FOOD & DINING",
			n:    2,
			want: []string{"Groceries", "Food & Dining"},
		},
		{
			name: "unknown category falls back to Uncategorized",
			resp: "Groceries\nSnacks",
			n:    2,
			want: []string{"Groceries", "Uncategorized"},
		},
		{
			name: "short reply pads with fallback",
			resp: "Groceries",
			n:    3,
			want: []string{"Groceries", "Uncategorized", "Uncategorized"},
		},
		{
			name: "blank lines skipped",
			resp: "\nGroceries\n\nFood & Dining\n",
			n:    2,
			want: []string{"Groceries", "Food & Dining"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCategoryResponse(tt.resp, tt.n, categories))
		})
	}

	t.Run("fallback is first category when Uncategorized not allowed", func(t *testing.T) {
		got := parseCategoryResponse("???", 1, []string{"Food & Dining", "Groceries"})
		assert.Equal(t, []string{"Food & Dining"}, got)
	})
}

func TestParseStatementResponse(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		ex, err := parseStatementResponse(`{"institution":"TD Bank","accountLast4":"435-9511742","transactions":[{"date":"2025-12-01","description":"AMAZON","amount":15.54},{"date":"2025-12-01","description":"SANTANDER BILLPAY","amount":-624.59}]}`)
		require.NoError(t, err)
		assert.Equal(t, "TD Bank", ex.Institution)
		assert.Equal(t, "1742", ex.AccountLast4)
		require.Len(t, ex.Transactions, 2)
		assert.Equal(t, 0, ex.Transactions[0].ID)
		assert.Equal(t, "AMAZON", ex.Transactions[0].Description)
		assert.Equal(t, 15.54, ex.Transactions[0].Amount)
		assert.Equal(t, 1, ex.Transactions[1].ID)
		assert.Equal(t, -624.59, ex.Transactions[1].Amount)
	})

	t.Run("code fenced json", func(t *testing.T) {
		ex, err := parseStatementResponse("```json\n{\"institution\":\"Chase\",\"accountLast4\":\"1234\",\"transactions\":[]}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Chase", ex.Institution)
		assert.Equal(t, "1234", ex.AccountLast4)
		assert.Empty(t, ex.Transactions)
	})

	t.Run("json embedded in prose", func(t *testing.T) {
		ex, err := parseStatementResponse(`Here is the extraction: {"institution":"Amex","transactions":[{"date":"01/02/2025","description":"COFFEE","amount":-4.5}]}`)
		require.NoError(t, err)
		assert.Equal(t, "Amex", ex.Institution)
		require.Len(t, ex.Transactions, 1)
		assert.Equal(t, -4.5, ex.Transactions[0].Amount)
	})

	t.Run("string amount and missing description", func(t *testing.T) {
		ex, err := parseStatementResponse(`{"transactions":[{"date":"01/02/2025","amount":"1,234.56"}]}`)
		require.NoError(t, err)
		require.Len(t, ex.Transactions, 1)
		assert.Equal(t, "Unknown", ex.Transactions[0].Description)
		assert.Equal(t, 1234.56, ex.Transactions[0].Amount)
	})

	t.Run("empty rows dropped", func(t *testing.T) {
		ex, err := parseStatementResponse(`{"transactions":[{},{"date":"01/02/2025","description":"OK","amount":1}]}`)
		require.NoError(t, err)
		require.Len(t, ex.Transactions, 1)
		assert.Equal(t, "OK", ex.Transactions[0].Description)
	})

	t.Run("no json at all", func(t *testing.T) {
		_, err := parseStatementResponse("sorry, I cannot do that")
		require.Error(t, err)
	})
}

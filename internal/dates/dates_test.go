package dates

import (
	"testing"

	"github.com/glei1339/FinLens/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "iso", input: "2024-01-05", want: 2024, ok: true},
		{name: "us slash 4-digit year", input: "01/05/2024", want: 2024, ok: true},
		{name: "us slash 2-digit year 2000s", input: "1/5/24", want: 2024, ok: true},
		{name: "us slash 2-digit year 1900s", input: "1/5/87", want: 1987, ok: true},
		{name: "textual month", input: "Jan 5, 2024", want: 2024, ok: true},
		{name: "textual month day first", input: "5 Jan 2024", want: 2024, ok: true},
		{name: "bare year scan", input: "statement period 2023", want: 2023, ok: true},
		{name: "garbage", input: "not a date", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "whitespace", input: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Year(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestYearMonthOf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  YearMonth
		ok    bool
	}{
		{name: "iso", input: "2024-01-05", want: YearMonth{2024, 1}, ok: true},
		{name: "iso single-digit month", input: "2024-9-05", want: YearMonth{2024, 9}, ok: true},
		{name: "us slash", input: "03/15/2024", want: YearMonth{2024, 3}, ok: true},
		{name: "us slash 2-digit year", input: "12/31/99", want: YearMonth{1999, 12}, ok: true},
		{name: "dash delimited", input: "06-01-2023", want: YearMonth{2023, 6}, ok: true},
		{name: "textual month", input: "Feb 2, 2024", want: YearMonth{2024, 2}, ok: true},
		{name: "textual month day first", input: "2 Feb 2024", want: YearMonth{2024, 2}, ok: true},
		{name: "year only falls back to january", input: "sometime in 2022", want: YearMonth{2022, 1}, ok: true},
		{name: "month out of range falls back to year only", input: "13/40/2024", want: YearMonth{2024, 1}, ok: true},
		{name: "garbage", input: "hello world", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := YearMonthOf(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUniqueYears(t *testing.T) {
	txns := []model.Transaction{
		{Date: "01/05/2024"},
		{Date: "2023-06-01"},
		{Date: "03/09/2024"},
		{Date: "garbage"},
	}
	assert.Equal(t, []int{2024, 2023}, UniqueYears(txns))
	assert.Empty(t, UniqueYears(nil))
}

func TestFilterByYear(t *testing.T) {
	txns := []model.Transaction{
		{ID: 0, Date: "01/05/2024"},
		{ID: 1, Date: "2023-06-01"},
		{ID: 2, Date: "03/09/2024"},
	}
	got := FilterByYear(txns, 2024)
	assert.Len(t, got, 2)
	for _, tx := range got {
		y, ok := Year(tx.Date)
		assert.True(t, ok)
		assert.Equal(t, 2024, y)
	}
}

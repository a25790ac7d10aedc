package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glei1339/FinLens/internal/model"
)

func trainingSet() []model.Transaction {
	return []model.Transaction{
		{ID: 0, Description: "STARBUCKS STORE #1234", Category: "Food & Dining"},
		{ID: 1, Description: "STARBUCKS COFFEE SEATTLE", Category: "Food & Dining"},
		{ID: 2, Description: "DUNKIN DONUTS 0423", Category: "Food & Dining"},
		{ID: 3, Description: "WHOLE FOODS MARKET", Category: "Groceries"},
		{ID: 4, Description: "TRADER JOES #552", Category: "Groceries"},
		{ID: 5, Description: "KROGER FUEL CTR", Category: "Groceries"},
		{ID: 6, Description: "SHELL OIL 57442", Category: "Transportation"},
		{ID: 7, Description: "CHEVRON GAS STATION", Category: "Transportation"},
	}
}

func TestNewSuggesterNeedsTwoCategories(t *testing.T) {
	_, err := NewSuggester([]model.Transaction{
		{Description: "STARBUCKS", Category: "Food & Dining"},
		{Description: "DUNKIN", Category: "Food & Dining"},
		{Description: "UNKNOWN THING", Category: model.Uncategorized},
	})
	assert.ErrorIs(t, err, ErrTooFewCategories)

	_, err = NewSuggester(nil)
	assert.ErrorIs(t, err, ErrTooFewCategories)
}

func TestSuggest(t *testing.T) {
	s, err := NewSuggester(trainingSet())
	require.NoError(t, err)

	got := s.Suggest("STARBUCKS STORE #9999")
	require.NotEmpty(t, got)
	assert.Equal(t, "Food & Dining", got[0])

	got = s.Suggest("WHOLE FOODS NYC")
	require.NotEmpty(t, got)
	assert.Equal(t, "Groceries", got[0])

	assert.Nil(t, s.Suggest("   "))
}

func TestSuggestAll(t *testing.T) {
	s, err := NewSuggester(trainingSet())
	require.NoError(t, err)

	txns := []model.Transaction{
		{ID: 10, Description: "STARBUCKS RESERVE", Category: model.Uncategorized},
		{ID: 11, Description: "CHEVRON 7811", Category: ""},
		{ID: 12, Description: "ALREADY DONE", Category: "Shopping"},
	}
	got := s.SuggestAll(txns)

	require.Contains(t, got, 10)
	assert.Equal(t, "Food & Dining", got[10][0])
	require.Contains(t, got, 11)
	assert.NotContains(t, got, 12, "categorized transactions are skipped")
}

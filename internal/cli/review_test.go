package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glei1339/FinLens/internal/model"
)

func TestReviewSuggestions(t *testing.T) {
	txns := []model.Transaction{
		{ID: 0, Description: "STARBUCKS", Date: "01/05/2024", Amount: -5.75},
		{ID: 1, Description: "MYSTERY SHOP", Date: "01/06/2024", Amount: -20},
		{ID: 2, Description: "NO SUGGESTIONS", Date: "01/07/2024", Amount: -1},
		{ID: 3, Description: "SHELL", Date: "01/08/2024", Amount: -40},
	}
	suggestions := map[int][]string{
		0: {"Food & Dining", "Groceries"},
		1: {"Shopping"},
		3: {"Transportation"},
	}

	t.Run("accept by number, custom name, skip", func(t *testing.T) {
		input := strings.NewReader("1\nPet Supplies\n\n")
		var out bytes.Buffer
		choices, err := NewReviewer(input, &out).ReviewSuggestions(context.Background(), txns, suggestions)
		require.NoError(t, err)
		assert.Equal(t, map[int]string{0: "Food & Dining", 1: "Pet Supplies"}, choices)
		assert.Contains(t, out.String(), "STARBUCKS")
		assert.NotContains(t, out.String(), "NO SUGGESTIONS")
	})

	t.Run("quit keeps earlier choices", func(t *testing.T) {
		input := strings.NewReader("2\nq\n")
		var out bytes.Buffer
		choices, err := NewReviewer(input, &out).ReviewSuggestions(context.Background(), txns, suggestions)
		require.NoError(t, err)
		assert.Equal(t, map[int]string{0: "Groceries"}, choices)
	})

	t.Run("out of range number skips", func(t *testing.T) {
		input := strings.NewReader("9\n\n\n")
		var out bytes.Buffer
		choices, err := NewReviewer(input, &out).ReviewSuggestions(context.Background(), txns, suggestions)
		require.NoError(t, err)
		assert.Empty(t, choices)
		assert.Contains(t, out.String(), "no suggestion 9")
	})

	t.Run("eof ends session cleanly", func(t *testing.T) {
		input := strings.NewReader("1")
		var out bytes.Buffer
		choices, err := NewReviewer(input, &out).ReviewSuggestions(context.Background(), txns, suggestions)
		require.NoError(t, err)
		assert.Equal(t, map[int]string{0: "Food & Dining"}, choices)
	})
}

func TestLineReaderCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewLineReader(blockingReader{})
	_, err := r.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

// blockingReader never returns, standing in for a user who walks away.
type blockingReader struct{}

func (blockingReader) Read(_ []byte) (int, error) {
	select {}
}

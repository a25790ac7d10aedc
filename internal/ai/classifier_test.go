package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/model"
)

func fastRetry(attempts int) common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
	}
}

// fakeCompleter replays canned responses in order.
type fakeCompleter struct {
	responses []string
	prompts   []string
	maxTokens []int
	err       error
}

func (f *fakeCompleter) complete(_ context.Context, prompt string, maxTokens int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prompts = append(f.prompts, prompt)
	f.maxTokens = append(f.maxTokens, maxTokens)
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func TestNew(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := New(Config{})
		require.ErrorIs(t, err, common.ErrMissingAPIKey)
	})

	t.Run("anthropic by prefix", func(t *testing.T) {
		c, err := New(Config{APIKey: "  SK-ANT-api03-xyz  "})
		require.NoError(t, err)
		_, ok := c.backend.(*anthropicBackend)
		assert.True(t, ok)
	})

	t.Run("openai otherwise", func(t *testing.T) {
		c, err := New(Config{APIKey: "sk-proj-xyz"})
		require.NoError(t, err)
		_, ok := c.backend.(*openaiBackend)
		assert.True(t, ok)
	})
}

func TestClassifyDepositsVsPayments(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"DPP"}}
	c := &Client{backend: fake}

	txns := []model.Transaction{
		{ID: 0, Description: "PAYROLL", Amount: -1200},
		{ID: 1, Description: "GROCERY", Amount: 45.10},
		{ID: 2, Description: "ZERO", Amount: 0},
	}

	var messages []string
	got, err := c.ClassifyDepositsVsPayments(context.Background(), txns, func(m string) { messages = append(messages, m) })
	require.NoError(t, err)

	assert.Equal(t, 1200.0, got[0].Amount, "deposit flips negative to positive")
	assert.Equal(t, -45.10, got[1].Amount, "payment flips positive to negative")
	assert.Equal(t, 0.0, got[2].Amount, "zero untouched")
	assert.Equal(t, -1200.0, txns[0].Amount, "input not mutated")
	assert.Equal(t, []int{200}, fake.maxTokens)
	assert.Equal(t, []string{"Analyzing transactions 1-3 of 3..."}, messages)
}

func TestClassifyDepositsVsPaymentsBatches(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"PPPPPPPPPPPPPPPPPPPPPPPPP", "DD"}}
	c := &Client{backend: fake}

	txns := make([]model.Transaction, 27)
	for i := range txns {
		txns[i] = model.Transaction{ID: i, Description: "X", Amount: 10}
	}

	got, err := c.ClassifyDepositsVsPayments(context.Background(), txns, nil)
	require.NoError(t, err)
	require.Len(t, fake.prompts, 2)
	assert.Equal(t, -10.0, got[0].Amount)
	assert.Equal(t, -10.0, got[24].Amount)
	assert.Equal(t, 10.0, got[25].Amount, "second batch deposits preserved")
	assert.Equal(t, 10.0, got[26].Amount)
}

func TestClassifyDepositsVsPaymentsErrors(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("boom")}
	c := &Client{backend: fake, retry: fastRetry(1)}

	_, err := c.ClassifyDepositsVsPayments(context.Background(), []model.Transaction{{Amount: 1}}, nil)
	require.Error(t, err)

	got, err := c.ClassifyDepositsVsPayments(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// flakyCompleter fails a fixed number of calls before answering.
type flakyCompleter struct {
	failures int
	calls    int
	err      error
	response string
}

func (f *flakyCompleter) complete(_ context.Context, _ string, _ int) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return f.response, nil
}

func TestCompleteWithRetry(t *testing.T) {
	t.Run("transient provider failures are retried", func(t *testing.T) {
		fake := &flakyCompleter{failures: 2, err: errors.New("status 503"), response: "D"}
		c := &Client{backend: fake, retry: fastRetry(3)}

		got, err := c.ClassifyDepositsVsPayments(context.Background(), []model.Transaction{{Amount: -5}}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, fake.calls)
		assert.Equal(t, 5.0, got[0].Amount)
	})

	t.Run("exhausted retries surface the failure", func(t *testing.T) {
		fake := &flakyCompleter{failures: 10, err: errors.New("status 503"), response: "D"}
		c := &Client{backend: fake, retry: fastRetry(2)}

		_, err := c.ClassifyDepositsVsPayments(context.Background(), []model.Transaction{{Amount: -5}}, nil)
		require.ErrorIs(t, err, common.ErrMaxRetries)
		assert.Equal(t, 2, fake.calls)
	})

	t.Run("non-retryable backend error stops after one call", func(t *testing.T) {
		fake := &flakyCompleter{
			failures: 10,
			err:      &common.RetryableError{Err: errors.New("status 401"), Retryable: false},
		}
		c := &Client{backend: fake, retry: fastRetry(3)}

		_, err := c.CategorizeWithModel(context.Background(), []model.Transaction{{Description: "X"}}, []string{"Groceries"}, nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrMaxRetries)
		assert.Equal(t, 1, fake.calls)
	})

	t.Run("extraction path retries too", func(t *testing.T) {
		fake := &flakyCompleter{failures: 1, err: errors.New("status 502"), response: `{"transactions":[{"date":"01/05/2025","description":"RENT","amount":-1500}]}`}
		c := &Client{backend: fake, retry: fastRetry(3)}

		ex, err := c.ExtractFromText(context.Background(), "statement text")
		require.NoError(t, err)
		assert.Equal(t, 2, fake.calls)
		require.Len(t, ex.Transactions, 1)
	})
}

func TestCategorizeWithModel(t *testing.T) {
	fake := &fakeCompleter{responses: []string{"1. Groceries\n2. Nonsense"}}
	c := &Client{backend: fake}

	txns := []model.Transaction{
		{ID: 0, Description: "WHOLE FOODS", Category: model.Uncategorized},
		{ID: 1, Description: "MYSTERY", Category: model.Uncategorized},
	}
	categories := []string{"Groceries", model.Uncategorized}

	got, err := c.CategorizeWithModel(context.Background(), txns, categories, nil)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got[0].Category)
	assert.Equal(t, model.Uncategorized, got[1].Category)
	assert.Equal(t, []int{500}, fake.maxTokens)
	assert.Contains(t, fake.prompts[0], "Groceries, Uncategorized")
	assert.Equal(t, model.Uncategorized, txns[0].Category, "input not mutated")
}

func TestExtractFromText(t *testing.T) {
	t.Run("empty text short-circuits", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{"unused"}}
		c := &Client{backend: fake}
		ex, err := c.ExtractFromText(context.Background(), "   ")
		require.NoError(t, err)
		assert.Empty(t, ex.Transactions)
		assert.Empty(t, fake.prompts)
	})

	t.Run("round trip", func(t *testing.T) {
		fake := &fakeCompleter{responses: []string{`{"institution":"Chase","accountLast4":"9876","transactions":[{"date":"01/05/2025","description":"RENT","amount":-1500}]}`}}
		c := &Client{backend: fake}
		ex, err := c.ExtractFromText(context.Background(), "some statement text")
		require.NoError(t, err)
		assert.Equal(t, "Chase", ex.Institution)
		require.Len(t, ex.Transactions, 1)
		assert.Equal(t, -1500.0, ex.Transactions[0].Amount)
		assert.Equal(t, []int{16000}, fake.maxTokens)
	})
}

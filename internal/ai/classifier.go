package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/model"
)

// completeWithRetry shields a model call behind exponential backoff.
// Backends mark client-side failures non-retryable; everything else,
// including transport errors and 5xx responses, gets another attempt.
func (c *Client) completeWithRetry(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var resp string
	err := common.WithRetry(ctx, func() error {
		var err error
		resp, err = c.backend.complete(ctx, prompt, maxTokens)
		return err
	}, c.retry)
	return resp, err
}

// ClassifyDepositsVsPayments asks the model whether each transaction is money
// in or money out and corrects amount signs to match. Zero amounts are left
// untouched, and an unreadable or short reply defaults to payment.
func (c *Client) ClassifyDepositsVsPayments(ctx context.Context, txns []model.Transaction, progress ProgressFunc) ([]model.Transaction, error) {
	if len(txns) == 0 {
		return txns, nil
	}

	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	for start := 0; start < len(out); start += signBatchSize {
		end := start + signBatchSize
		if end > len(out) {
			end = len(out)
		}
		if progress != nil {
			progress(fmt.Sprintf("Analyzing transactions %d-%d of %d...", start+1, end, len(out)))
		}

		resp, err := c.completeWithRetry(ctx, buildSignPrompt(out[start:end]), 200)
		if err != nil {
			return nil, fmt.Errorf("classifying deposits vs payments: %w", err)
		}

		deposits := parseSignResponse(resp, end-start)
		for i := start; i < end; i++ {
			amt := out[i].Amount
			switch {
			case deposits[i-start] && amt < 0:
				out[i].Amount = -amt
			case !deposits[i-start] && amt > 0:
				out[i].Amount = -amt
			}
		}
	}
	return out, nil
}

// CategorizeWithModel assigns one category from the allowed list to every
// transaction in the slice. Callers pass only the transactions they want
// recategorized, typically those still Uncategorized after the keyword pass.
func (c *Client) CategorizeWithModel(ctx context.Context, txns []model.Transaction, categories []string, progress ProgressFunc) ([]model.Transaction, error) {
	if len(txns) == 0 || len(categories) == 0 {
		return txns, nil
	}

	out := make([]model.Transaction, len(txns))
	copy(out, txns)

	for start := 0; start < len(out); start += categoryBatchSize {
		end := start + categoryBatchSize
		if end > len(out) {
			end = len(out)
		}
		if progress != nil {
			progress(fmt.Sprintf("Categorizing transactions %d-%d of %d...", start+1, end, len(out)))
		}

		resp, err := c.completeWithRetry(ctx, buildCategoryPrompt(out[start:end], categories), 500)
		if err != nil {
			return nil, fmt.Errorf("categorizing transactions: %w", err)
		}

		assigned := parseCategoryResponse(resp, end-start, categories)
		for i := start; i < end; i++ {
			out[i].Category = assigned[i-start]
		}
	}
	return out, nil
}

// ExtractFromText sends raw statement text to the model and parses the
// returned JSON into transactions. It is the fallback path for PDFs whose
// layout defeats positional extraction.
func (c *Client) ExtractFromText(ctx context.Context, pageText string) (*Extraction, error) {
	if strings.TrimSpace(pageText) == "" {
		return &Extraction{}, nil
	}

	resp, err := c.completeWithRetry(ctx, buildExtractionPrompt(pageText), 16000)
	if err != nil {
		return nil, fmt.Errorf("extracting statement text: %w", err)
	}

	ex, err := parseStatementResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parsing extraction response: %w", err)
	}
	return ex, nil
}

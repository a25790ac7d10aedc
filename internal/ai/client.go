// Package ai provides the optional model-assisted classification
// capability: deposit/payment sign labeling, categorization against a fixed
// category list, and whole-statement extraction from raw PDF text. The
// provider is picked from the API key prefix; callers treat every failure
// as non-fatal and fall back to the deterministic pipeline.
package ai

import (
	"context"
	"strings"
	"time"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/model"
)

// ProgressFunc receives human-readable progress messages while batches are
// in flight.
type ProgressFunc func(message string)

// Extraction is the result of a whole-statement read from raw page text.
type Extraction struct {
	Institution  string
	AccountLast4 string
	Transactions []model.Transaction
}

// Capability is the pluggable model-assisted interface the ingestion
// pipeline consumes. The deterministic pipeline never requires it.
type Capability interface {
	// ClassifyDepositsVsPayments relabels only the sign of each amount.
	ClassifyDepositsVsPayments(ctx context.Context, txns []model.Transaction, progress ProgressFunc) ([]model.Transaction, error)
	// CategorizeWithModel assigns each transaction a category drawn from
	// the provided list only.
	CategorizeWithModel(ctx context.Context, txns []model.Transaction, categories []string, progress ProgressFunc) ([]model.Transaction, error)
	// ExtractFromText reads an entire statement from accumulated page text.
	ExtractFromText(ctx context.Context, pageText string) (*Extraction, error)
}

// Config selects and configures a model backend.
type Config struct {
	// APIKey routes to Anthropic when it carries the sk-ant- prefix,
	// otherwise to an OpenAI-compatible endpoint.
	APIKey string
	// Model overrides the backend's default model name.
	Model string
	// BaseURL overrides the OpenAI-compatible endpoint.
	BaseURL string
}

// completer is the single primitive both backends implement.
type completer interface {
	complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Client implements Capability over a provider backend.
type Client struct {
	backend completer
	retry   common.RetryOptions
}

// defaultRetryOptions keeps retried batches interactive: three attempts
// with a short first backoff and a cap well under the CLI's patience.
func defaultRetryOptions() common.RetryOptions {
	return common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		Multiplier:   2.0,
	}
}

// New builds a Capability from the config, selecting the provider by key
// prefix. A missing key is a loud error; callers decide whether the
// capability was optional.
func New(cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, common.NewUserError("an API key is required for model-assisted analysis", common.ErrMissingAPIKey)
	}
	cfg.APIKey = key
	if strings.HasPrefix(strings.ToLower(key), "sk-ant-") {
		return &Client{backend: newAnthropicBackend(cfg), retry: defaultRetryOptions()}, nil
	}
	return &Client{backend: newOpenAIBackend(cfg), retry: defaultRetryOptions()}, nil
}

package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/EugeneWoo/investment-agent/internal/config"
)

// OpenAI implements Provider over the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
	cfg    *config.OpenAIConfig

	// newBackOff builds the per-call retry policy. Overridable in tests to
	// avoid real backoff waits.
	newBackOff func() backoff.BackOff
}

func NewOpenAI(cfg *config.OpenAIConfig) *OpenAI {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIEndpoint),
		// Retry lives in this package's backoff policy, not the SDK.
		option.WithMaxRetries(0),
	)

	return &OpenAI{
		client:     client,
		cfg:        cfg,
		newBackOff: newRetryPolicy,
	}
}

// newRetryPolicy allows 3 total attempts with exponential backoff between
// them, starting at 1s and capped at 10s.
func newRetryPolicy() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second
	return backoff.WithMaxRetries(bo, 2)
}

// Complete issues one chat completion request per attempt, retrying on any
// provider error. On success the first text content is returned; a response
// with no text yields an empty string and a warning, not an error. Exhausted
// retries surface as a *CompletionError.
func (o *OpenAI) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int64) (string, error) {
	var resp *openai.ChatCompletion

	operation := func() error {
		r, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.F(o.cfg.Model),
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userMessage),
			}),
			MaxTokens:   openai.F(maxTokens),
			Temperature: openai.F(0.0),
		})
		if err != nil {
			slog.Warn("completion attempt failed", "error", err)
			return err
		}
		resp = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(o.newBackOff(), ctx)); err != nil {
		slog.Error("completion failed after retries", "error", err)
		return "", &CompletionError{UserMessagePrefix: messagePrefix(userMessage), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		slog.Warn("completion returned no text content")
		return "", nil
	}

	content := resp.Choices[0].Message.Content
	slog.Info("completion successful", "chars", len(content))
	return content, nil
}

var _ Provider = (*OpenAI)(nil)

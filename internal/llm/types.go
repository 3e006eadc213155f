package llm

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Provider issues a single-turn (system prompt + user message) completion
// request and returns the model's text output.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int64) (string, error)
}

// CompletionError is returned when all attempts against the completion
// provider have been exhausted. It carries a prefix of the user message so
// the failing call can be identified from logs without re-running.
type CompletionError struct {
	UserMessagePrefix string
	Err               error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed for message (first 100 chars) %q: %v", e.UserMessagePrefix, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// messagePrefix truncates the user message for diagnostic context,
// backing off to a rune boundary so the prefix stays valid UTF-8.
func messagePrefix(s string) string {
	n := 100
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

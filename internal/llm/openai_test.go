package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EugeneWoo/investment-agent/internal/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	o := NewOpenAI(&config.OpenAIConfig{
		APIKey:      "test-key",
		APIEndpoint: ts.URL,
		Model:       "gpt-4o",
	})
	o.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}
	return o
}

func completionBody(content string) string {
	return `{"id": "cmpl-1", "object": "chat.completion", "choices": [{"index": 0, "message": {"role": "assistant", "content": ` + jsonString(content) + `}, "finish_reason": "stop"}]}`
}

func jsonString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func TestCompleteReturnsText(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("Hello from the model")))
	})

	got, err := p.Complete(context.Background(), "system", "user message", 256)
	require.NoError(t, err)
	assert.Equal(t, "Hello from the model", got)
}

func TestCompleteEmptyContentIsNotAnError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("")))
	})

	got, err := p.Complete(context.Background(), "system", "user message", 256)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCompleteRetriesThenFailsTyped(t *testing.T) {
	var calls atomic.Int64
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	longMessage := strings.Repeat("x", 150)
	_, err := p.Complete(context.Background(), "system", longMessage, 256)

	require.Error(t, err)
	var cerr *CompletionError
	require.True(t, errors.As(err, &cerr))
	assert.Len(t, cerr.UserMessagePrefix, 100)
	assert.GreaterOrEqual(t, calls.Load(), int64(3), "should attempt 3 times")
}

func TestCompleteErrorPrefixStaysValidUTF8(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	// 99 ASCII bytes followed by multi-byte runes puts a rune boundary
	// right across the truncation point.
	message := strings.Repeat("x", 99) + strings.Repeat("é", 30)
	_, err := p.Complete(context.Background(), "system", message, 256)

	require.Error(t, err)
	var cerr *CompletionError
	require.True(t, errors.As(err, &cerr))
	assert.True(t, utf8.ValidString(cerr.UserMessagePrefix))
	assert.Equal(t, strings.Repeat("x", 99), cerr.UserMessagePrefix)
}

func TestCompleteRecoversOnSecondAttempt(t *testing.T) {
	var calls atomic.Int64
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("recovered")))
	})

	got, err := p.Complete(context.Background(), "system", "user message", 256)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
}

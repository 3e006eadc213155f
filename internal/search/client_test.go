package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EugeneWoo/investment-agent/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(config.TavilyConfig{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		Timeout: 5 * time.Second,
	}, nil)
	// No real backoff waits in tests; attempt count stays at 3.
	c.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}
	return c
}

func TestSearchReturnsResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"title": "Result", "url": "https://example.com", "content": "Content", "score": 0.9}]}`))
	})

	results := c.Search(context.Background(), "test query", 3)

	require.Len(t, results, 1)
	assert.Equal(t, "Result", results[0].Title)
	assert.Equal(t, "https://example.com", results[0].URL)
	require.NotNil(t, results[0].Score)
	assert.InDelta(t, 0.9, *results[0].Score, 1e-9)
}

func TestSearchCachesResults(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"results": [{"title": "Result", "url": "u", "content": "c"}]}`))
	})

	first := c.Search(context.Background(), "test query", 3)
	second := c.Search(context.Background(), "test query", 3)

	assert.Equal(t, int64(1), calls.Load(), "second call should hit the cache")
	assert.Equal(t, first, second)
}

func TestSearchFailureReturnsEmptyAndIsNotCached(t *testing.T) {
	var calls atomic.Int64
	var failing atomic.Bool
	failing.Store(true)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"results": [{"title": "Recovered", "url": "u", "content": "c"}]}`))
	})

	results := c.Search(context.Background(), "test query", 3)
	assert.Empty(t, results)
	assert.Equal(t, int64(3), calls.Load(), "should retry 3 times before giving up")

	// Failure is not cached: the next call goes back out and can succeed.
	failing.Store(false)
	results = c.Search(context.Background(), "test query", 3)
	require.Len(t, results, 1)
	assert.Equal(t, "Recovered", results[0].Title)
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [
			{"title": "a", "url": "u", "content": "c"},
			{"title": "b", "url": "u", "content": "c"},
			{"title": "c", "url": "u", "content": "c"}
		]}`))
	})

	results := c.Search(context.Background(), "test query", 2)
	assert.Len(t, results, 2)
}

func TestClearCache(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	c.Search(context.Background(), "test query", 3)
	c.ClearCache()
	c.Search(context.Background(), "test query", 3)

	assert.Equal(t, int64(2), calls.Load())
}

func TestQueryKeyNormalizesWhitespace(t *testing.T) {
	assert.Equal(t, QueryKey("acme funding"), QueryKey("  acme funding  "))
	assert.NotEqual(t, QueryKey("acme funding"), QueryKey("acme sentiment"))
}

func TestSharedCacheAcrossClients(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	t.Cleanup(ts.Close)

	cfg := config.TavilyConfig{APIKey: "k", BaseURL: ts.URL, Timeout: 5 * time.Second}
	shared := NewCache()
	a := NewClient(cfg, shared)
	b := NewClient(cfg, shared)

	a.Search(context.Background(), "q", 3)
	b.Search(context.Background(), "q", 3)

	assert.Equal(t, int64(1), calls.Load())
}

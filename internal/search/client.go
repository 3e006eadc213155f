// Package search wraps a Tavily-compatible web search API with bounded
// retry and in-memory result caching. Search is evidence gathering, not a
// critical path: exhausted retries degrade to an empty result set rather
// than failing the caller.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/EugeneWoo/investment-agent/internal/config"
)

// Result is one search hit. Content is a bounded-length excerpt, not raw
// page content.
type Result struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Content string   `json:"content"`
	Score   *float64 `json:"score,omitempty"`
}

type searchRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Client issues keyword queries against the search API. The cache is an
// explicit object owned by the client; callers wanting shared caching across
// clients pass the same Cache to each.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *Cache

	newBackOff func() backoff.BackOff
}

// NewClient creates a search client. A nil cache gets a fresh private one.
func NewClient(cfg config.TavilyConfig, cache *Cache) *Client {
	if cache == nil {
		cache = NewCache()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		client:     &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		newBackOff: newRetryPolicy,
	}
}

func newRetryPolicy() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second
	return backoff.WithMaxRetries(bo, 2)
}

// Search returns up to maxResults hits for query. Repeated identical queries
// within a process hit the cache and issue no external call. If all attempts
// fail the failure is swallowed: a warning is logged and an empty slice is
// returned, and nothing is cached so a later call can retry.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []Result {
	key := QueryKey(query)
	if results, ok := c.cache.Get(key); ok {
		slog.Debug("search cache hit", "query", query)
		return results
	}

	var results []Result
	operation := func() error {
		r, err := c.doSearch(ctx, query, maxResults)
		if err != nil {
			slog.Warn("search attempt failed", "query", query, "error", err)
			return err
		}
		results = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		slog.Warn("search failed after retries, returning no results", "query", query, "error", err)
		return nil
	}

	c.cache.Set(key, results)
	slog.Info("search successful", "query", query, "results", len(results))
	return results
}

func (c *Client) doSearch(ctx context.Context, query string, maxResults int) ([]Result, error) {
	body, err := json.Marshal(searchRequest{
		APIKey:            c.apiKey,
		Query:             query,
		SearchDepth:       "advanced",
		MaxResults:        maxResults,
		IncludeAnswer:     false,
		IncludeRawContent: false,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search query error: status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := parsed.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// ClearCache empties the client's cache. Test isolation only.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

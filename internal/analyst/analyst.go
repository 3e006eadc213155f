// Package analyst implements the shared analyst pattern: concurrent search
// fan-out, order-preserving evidence assembly, and one structured-JSON
// completion call with a schema-conformant fallback on malformed output.
package analyst

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/EugeneWoo/investment-agent/apimodels"
	"github.com/EugeneWoo/investment-agent/internal/jsonx"
	"github.com/EugeneWoo/investment-agent/internal/llm"
	"github.com/EugeneWoo/investment-agent/internal/search"
)

const excerptMaxChars = 300

// Searcher is the slice of the search client an analyst needs.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []search.Result
}

// Spec defines one analyst type. Prompt text and query templates are
// configuration data; the run logic is identical across analysts.
type Spec struct {
	Name          string
	NeutralPrompt string
	AversePrompt  string

	// Queries builds the fixed, company-parameterized search query list.
	// Evidence assembly preserves this order regardless of which query
	// resolves first.
	Queries func(company string) []string

	ResultsPerQuery int
	MaxTokens       int64
	EmptyMarker     string

	// UserMessage embeds the company and assembled evidence block into the
	// completion request.
	UserMessage func(company, research string) string

	// Fallback builds the schema-matching document substituted when the
	// model returns something that does not parse as a JSON object.
	Fallback func(company string) map[string]any
}

type Analyst struct {
	spec     Spec
	searcher Searcher
	provider llm.Provider
}

func New(spec Spec, searcher Searcher, provider llm.Provider) *Analyst {
	return &Analyst{
		spec:     spec,
		searcher: searcher,
		provider: provider,
	}
}

func (a *Analyst) Name() string { return a.spec.Name }

// Run gathers evidence and produces one analyst report. The returned message
// content is always a valid JSON object; a completion failure is the only
// error path.
func (a *Analyst) Run(ctx context.Context, company string, rt apimodels.RiskTolerance) (apimodels.Message, error) {
	systemPrompt := a.spec.NeutralPrompt
	if rt.Normalize() == apimodels.RiskAverse {
		systemPrompt = a.spec.AversePrompt
	}

	slog.Info("analyst starting", "analyst", a.spec.Name, "company", company, "risk_tolerance", rt.Normalize())

	research := a.gatherResearch(ctx, company)

	content, err := a.synthesize(ctx, company, research, systemPrompt)
	if err != nil {
		return apimodels.Message{}, err
	}

	slog.Info("analyst complete", "analyst", a.spec.Name, "company", company)
	return apimodels.Message{
		AgentName: a.spec.Name,
		Content:   content,
		Role:      apimodels.RoleAnalyst,
	}, nil
}

// gatherResearch runs all queries concurrently, then assembles the evidence
// block grouped by query-submission order. Search failures resolve to empty
// result lists, so the batch never aborts.
func (a *Analyst) gatherResearch(ctx context.Context, company string) string {
	queries := a.spec.Queries(company)
	resultsByQuery := make([][]search.Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			resultsByQuery[i] = a.searcher.Search(gctx, query, a.spec.ResultsPerQuery)
			return nil
		})
	}
	_ = g.Wait()

	var b strings.Builder
	for i, query := range queries {
		hits := resultsByQuery[i]
		if len(hits) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## Search: %s\n", query)
		for _, h := range hits {
			fmt.Fprintf(&b, "- [%s](%s)\n  %s\n", h.Title, h.URL, truncate(h.Content, excerptMaxChars))
		}
	}

	if b.Len() == 0 {
		return a.spec.EmptyMarker
	}
	return strings.TrimRight(b.String(), "\n")
}

// synthesize issues the completion call and cleans its output. If the
// cleaned text does not parse as a JSON object, the spec's fallback document
// is substituted so downstream consumers can always parse the content.
func (a *Analyst) synthesize(ctx context.Context, company, research, systemPrompt string) (string, error) {
	response, err := a.provider.Complete(ctx, systemPrompt, a.spec.UserMessage(company, research), a.spec.MaxTokens)
	if err != nil {
		return "", fmt.Errorf("%s synthesis: %w", a.spec.Name, err)
	}

	cleaned := jsonx.ExtractObject(response)
	var probe map[string]any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		slog.Warn("analyst returned non-JSON response, substituting fallback document",
			"analyst", a.spec.Name, "error", err)
		doc, _ := json.Marshal(a.spec.Fallback(company))
		return string(doc), nil
	}
	return cleaned, nil
}

// truncate shortens s to maxBytes without splitting UTF-8 runes.
func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

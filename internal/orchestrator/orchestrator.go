// Package orchestrator sequences the analysis pipeline: an eligibility
// pre-check, three independent analysts, a judge synthesis, and a
// conditional recommendation step.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/EugeneWoo/investment-agent/apimodels"
	"github.com/EugeneWoo/investment-agent/internal/analyst"
	"github.com/EugeneWoo/investment-agent/internal/jsonx"
	"github.com/EugeneWoo/investment-agent/internal/llm"
	"github.com/EugeneWoo/investment-agent/internal/search"
)

// Searcher is the slice of the search client the eligibility gate needs.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []search.Result
}

// analystRunner lets tests substitute fake analysts.
type analystRunner interface {
	Name() string
	Run(ctx context.Context, company string, rt apimodels.RiskTolerance) (apimodels.Message, error)
}

// Orchestrator owns the lifecycle of all intermediate objects for a run. It
// serves one analysis at a time; the only concurrency is each analyst's own
// search fan-out.
type Orchestrator struct {
	analysts []analystRunner
	searcher Searcher
	provider llm.Provider
	risk     apimodels.RiskTolerance
}

// New builds an orchestrator with the Discovery, Sentiment, and Valuation
// analysts in their fixed run order. rt is the default risk tolerance,
// overridable per run.
func New(searcher Searcher, provider llm.Provider, rt apimodels.RiskTolerance) *Orchestrator {
	return &Orchestrator{
		analysts: []analystRunner{
			analyst.New(analyst.DiscoverySpec(), searcher, provider),
			analyst.New(analyst.SentimentSpec(), searcher, provider),
			analyst.New(analyst.ValuationSpec(), searcher, provider),
		},
		searcher: searcher,
		provider: provider,
		risk:     rt.Normalize(),
	}
}

// CheckEligibility screens out companies that are already publicly listed or
// not AI-native. It fetches live listing evidence before asking the model so
// the model can't hallucinate, and blocks only on near-certain
// disqualification (either confidence strictly above 80). The gate fails
// open: any failure anywhere in this path yields an eligible decision.
func (o *Orchestrator) CheckEligibility(ctx context.Context, company string) apimodels.EligibilityDecision {
	eligible := apimodels.EligibilityDecision{Eligible: true, Reason: ""}

	query := fmt.Sprintf(`"%s" stock ticker site:finance.yahoo.com OR site:marketwatch.com`, company)
	results := o.searcher.Search(ctx, query, 3)

	snippets := make([]string, 0, len(results))
	for _, r := range results {
		snippets = append(snippets, fmt.Sprintf("[%s] (%s)\n%s", r.Title, r.URL, truncate(r.Content, 300)))
	}
	evidence := strings.Join(snippets, "\n\n")
	if evidence == "" {
		evidence = "No results found."
	}

	userMessage := fmt.Sprintf(`Company: %s

Web search results from Yahoo Finance / MarketWatch:
%s`, company, evidence)

	response, err := o.provider.Complete(ctx, eligibilityPrompt, userMessage, 256)
	if err != nil {
		slog.Warn("eligibility check failed, proceeding anyway", "company", company, "error", err)
		return eligible
	}

	// Confidences decode as float64 so models emitting "95.0" still block.
	var decision struct {
		ListedConfidence      float64 `json:"listed_confidence"`
		NotAINativeConfidence float64 `json:"not_ai_native_confidence"`
		Eligible              bool    `json:"eligible"`
		Reason                string  `json:"reason"`
	}
	if err := json.Unmarshal([]byte(jsonx.ExtractLastObject(response)), &decision); err != nil {
		slog.Warn("eligibility check returned unparseable response, proceeding anyway",
			"company", company, "error", err)
		return eligible
	}

	slog.Info("eligibility check complete", "company", company,
		"listed_confidence", decision.ListedConfidence,
		"not_ai_native_confidence", decision.NotAINativeConfidence)

	if decision.ListedConfidence > 80 || decision.NotAINativeConfidence > 80 {
		reason := decision.Reason
		if reason == "" {
			reason = "Company does not meet eligibility criteria."
		}
		return apimodels.EligibilityDecision{Eligible: false, Reason: reason}
	}
	return eligible
}

// Run executes the full pipeline: three independent analysts with no shared
// context, then a judge verdict over all three reports, then recommendations
// on a GO. It always produces a verdict under provider degradation; only an
// analyst-level completion failure returns an error.
func (o *Orchestrator) Run(ctx context.Context, company string, rt apimodels.RiskTolerance) (*apimodels.RunResult, error) {
	if rt == "" {
		rt = o.risk
	}
	rt = rt.Normalize()

	start := time.Now()
	slog.Info("analysis starting", "company", company, "risk_tolerance", rt)

	messages := make([]apimodels.Message, 0, len(o.analysts)+1)
	for _, a := range o.analysts {
		msg, err := a.Run(ctx, company, rt)
		if err != nil {
			return nil, fmt.Errorf("running %s: %w", a.Name(), err)
		}
		messages = append(messages, msg)
	}

	analysis := formatAnalystReports(messages)

	judgeMsg, verdict := o.judge(ctx, company, analysis, rt)
	messages = append(messages, judgeMsg)
	slog.Info("judge verdict", "company", company, "verdict", verdict)

	var recommendations []string
	if verdict == apimodels.VerdictGo {
		recommendations = o.recommend(ctx, company, analysis)
		slog.Info("recommendations generated", "count", len(recommendations))
	}

	return &apimodels.RunResult{
		Verdict:         verdict,
		Messages:        messages,
		Recommendations: recommendations,
		Metadata: apimodels.RunMetadata{
			RunID:         uuid.NewString(),
			Company:       company,
			RiskTolerance: rt,
			Duration:      time.Since(start).String(),
		},
	}, nil
}

// judge reads all three analyst reports and issues the GO/NOGO verdict. A
// completion failure here is not propagated: the orchestrator's contract is
// to always produce a verdict, so a provider outage degrades to a
// conservative NOGO.
func (o *Orchestrator) judge(ctx context.Context, company, analysis string, rt apimodels.RiskTolerance) (apimodels.Message, apimodels.Verdict) {
	userMessage := fmt.Sprintf(`Company: %s
Risk tolerance: %s

Independent analyst reports:
%s

Issue your GO or NOGO verdict with rationale.`, company, rt, analysis)

	response, err := o.provider.Complete(ctx, judgePrompt, userMessage, 512)
	if err != nil {
		slog.Error("judge completion failed, substituting conservative verdict", "error", err)
		response = "NOGO\nUnable to complete analysis due to API error."
	}

	verdict := ParseVerdict(response)
	return apimodels.Message{
		AgentName: "Judge",
		Content:   response,
		Role:      apimodels.RoleJudge,
	}, verdict
}

// recommend asks for exactly three follow-up targets, each "Name — rationale"
// formatted. Recommendations are an enhancement, not a required output: any
// failure degrades silently to an empty list.
func (o *Orchestrator) recommend(ctx context.Context, topic, analysis string) []string {
	userMessage := fmt.Sprintf(`The investment analysis for "%s" returned a GO verdict.

Based on this analysis:
%s

Name exactly 3 specific Seed-to-Series B AI startups operating in this space that an investor should look at next. For each, provide:
- Company name
- One sentence on why it's worth investigating

Return ONLY a JSON array of 3 strings, each formatted as "Company Name — rationale sentence."
Example: ["Acme AI — building proprietary data moats in the legal vertical.", ...]

No markdown, no preamble, just the JSON array.`, topic, truncate(analysis, 2000))

	response, err := o.provider.Complete(ctx, recommendPrompt, userMessage, 512)
	if err != nil {
		slog.Warn("recommendation completion failed", "error", err)
		return nil
	}

	var items []string
	if err := json.Unmarshal([]byte(jsonx.StripFence(response)), &items); err != nil {
		slog.Warn("recommendation response did not parse as a string array", "error", err)
		return nil
	}
	if len(items) < 3 {
		slog.Warn("recommendation response too short", "count", len(items))
		return nil
	}
	return items[:3]
}

// formatAnalystReports renders each analyst message as a titled block for
// the judge: pretty-printed JSON when the content parses, raw content
// truncated to 500 chars otherwise.
func formatAnalystReports(messages []apimodels.Message) string {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		var doc any
		if err := json.Unmarshal([]byte(msg.Content), &doc); err == nil {
			pretty, _ := json.MarshalIndent(doc, "", "  ")
			parts = append(parts, fmt.Sprintf("### %s\n%s", msg.AgentName, pretty))
			continue
		}
		parts = append(parts, fmt.Sprintf("### %s\n%s", msg.AgentName, truncate(msg.Content, 500)))
	}
	return strings.Join(parts, "\n\n")
}

func truncate(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

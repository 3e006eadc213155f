package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EugeneWoo/investment-agent/apimodels"
)

func TestExtractSummary(t *testing.T) {
	t.Run("finds the summary suffix field", func(t *testing.T) {
		msg := apimodels.Message{
			AgentName: "Valuation Analyst",
			Content:   `{"valuation": {"overall_attractiveness_score": 70}, "valuation_summary": "Large market, fair entry price."}`,
			Role:      apimodels.RoleAnalyst,
		}
		assert.Equal(t, "Valuation Analyst: Large market, fair entry price.", ExtractSummary(msg))
	})

	t.Run("falls back to truncated raw content", func(t *testing.T) {
		msg := apimodels.Message{
			AgentName: "Broken Analyst",
			Content:   strings.Repeat("y", 300),
			Role:      apimodels.RoleAnalyst,
		}
		got := ExtractSummary(msg)
		assert.True(t, strings.HasPrefix(got, "Broken Analyst: "))
		assert.Len(t, got, len("Broken Analyst: ")+200)
	})
}

func sampleResult() *apimodels.RunResult {
	return &apimodels.RunResult{
		Verdict: apimodels.VerdictGo,
		Messages: []apimodels.Message{
			{
				AgentName: "Discovery Analyst",
				Content:   `{"founder_analysis": {"founder_quality_score": 85, "narrative": "Two repeat founders."}, "market_analysis": {"market_gap_score": 78, "bandwagon_risk_score": 20, "defensibility_score": 66, "differentiation": "Proprietary clinical data."}, "discovery_summary": "Strong founding team."}`,
				Role:      apimodels.RoleAnalyst,
			},
			{
				AgentName: "Sentiment Analyst",
				Content:   `{"sentiment": {"overall_sentiment_score": 72, "press_score": 70, "community_score": 68, "momentum_score": 80, "narrative": "Positive press.", "red_flags": ["one churned pilot"]}, "sentiment_summary": "Positive momentum."}`,
				Role:      apimodels.RoleAnalyst,
			},
			{
				AgentName: "Valuation Analyst",
				Content:   `{"valuation": {"overall_attractiveness_score": 74, "market_size_score": 90, "comparable_score": 60, "stage_fit_score": 70, "tam_estimate": "$8B", "narrative": "Large market.", "key_risks": ["crowded space"]}, "valuation_summary": "Attractive entry."}`,
				Role:      apimodels.RoleAnalyst,
			},
			{
				AgentName: "Judge",
				Content:   "GO\nStrong team, positive sentiment, large market.",
				Role:      apimodels.RoleJudge,
			},
		},
		Recommendations: []string{"Alpha AI — data moat.", "Beta AI — founder fit.", "Gamma AI — traction."},
		Metadata: apimodels.RunMetadata{
			RunID:         "run-1",
			Company:       "Acme AI",
			RiskTolerance: apimodels.RiskNeutral,
			Duration:      "42s",
		},
	}
}

func TestRender(t *testing.T) {
	md := Render(sampleResult())

	assert.Contains(t, md, "# Investment Analysis: Acme AI")
	assert.Contains(t, md, "🟢 GO")
	assert.Contains(t, md, "## Discovery Analyst")
	assert.Contains(t, md, "## Sentiment Analyst")
	assert.Contains(t, md, "## Valuation Analyst")
	assert.Contains(t, md, "## Judge Rationale")
	assert.Contains(t, md, "Strong team, positive sentiment, large market.")
	assert.NotContains(t, md, "Judge Rationale\n\nGO\n", "verdict token line is dropped from the rationale")
	assert.Contains(t, md, "| Founder Quality | Market Gap | Bandwagon Risk | Defensibility |")
	assert.Contains(t, md, "| 85 | 78 | 20 | 66 |")
	assert.Contains(t, md, "**Red flags**: one churned pilot")
	assert.Contains(t, md, "Alpha AI — data moat.")
	assert.Contains(t, md, "run-1")
}

func TestRenderNoGoWithoutRecommendations(t *testing.T) {
	result := sampleResult()
	result.Verdict = apimodels.VerdictNoGo
	result.Recommendations = nil

	md := Render(result)
	assert.Contains(t, md, "🔴 NOGO")
	assert.NotContains(t, md, "Also Worth Investigating")
}

func TestRenderToleratesNonJSONAnalystContent(t *testing.T) {
	result := sampleResult()
	result.Messages[0].Content = "not json"

	md := Render(result)
	assert.Contains(t, md, "## Discovery Analyst")
	assert.Contains(t, md, "not json")
}

func TestRenderNullScoresShowNA(t *testing.T) {
	result := sampleResult()
	result.Messages[1].Content = `{"sentiment": {"overall_sentiment_score": null, "press_score": null, "community_score": null, "momentum_score": null}, "sentiment_summary": "Sentiment analysis of Acme AI failed."}`

	md := Render(result)
	assert.Contains(t, md, "| N/A | N/A | N/A | N/A |")
}

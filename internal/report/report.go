// Package report renders a run result as a markdown document: the HTTP
// surface's stand-in for the original dashboard view.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/EugeneWoo/investment-agent/apimodels"
)

// ExtractSummary pulls the analyst's executive summary out of its JSON
// content: the single field whose name ends in "_summary". Falls back to the
// first 200 chars of raw content when the document is unreadable.
func ExtractSummary(msg apimodels.Message) string {
	var doc map[string]any
	if err := json.Unmarshal([]byte(msg.Content), &doc); err == nil {
		for key, value := range doc {
			if !strings.HasSuffix(key, "_summary") {
				continue
			}
			if s, ok := value.(string); ok {
				return fmt.Sprintf("%s: %s", msg.AgentName, s)
			}
		}
	}
	content := msg.Content
	if len(content) > 200 {
		content = content[:200]
	}
	return fmt.Sprintf("%s: %s", msg.AgentName, content)
}

// Render produces the full markdown report for one run.
func Render(result *apimodels.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investment Analysis: %s\n\n", result.Metadata.Company)

	if result.Verdict == apimodels.VerdictGo {
		b.WriteString("## Verdict: 🟢 GO\n\n")
	} else {
		b.WriteString("## Verdict: 🔴 NOGO\n\n")
	}

	for _, msg := range result.Messages {
		switch msg.Role {
		case apimodels.RoleJudge:
			b.WriteString("## Judge Rationale\n\n")
			b.WriteString(judgeRationale(msg.Content))
			b.WriteString("\n\n")
		case apimodels.RoleAnalyst:
			renderAnalyst(&b, msg)
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Also Worth Investigating\n\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\nRun %s · risk tolerance %s · completed in %s\n",
		result.Metadata.RunID, result.Metadata.RiskTolerance, result.Metadata.Duration)

	return b.String()
}

// judgeRationale drops the verdict token line, keeping only the reasoning.
func judgeRationale(content string) string {
	content = strings.TrimSpace(content)
	if i := strings.Index(content, "\n"); i >= 0 {
		return strings.TrimSpace(content[i+1:])
	}
	return content
}

func renderAnalyst(b *strings.Builder, msg apimodels.Message) {
	fmt.Fprintf(b, "## %s\n\n", msg.AgentName)

	var doc map[string]any
	if err := json.Unmarshal([]byte(msg.Content), &doc); err != nil {
		// Unreachable as long as the analyst fallback policy holds, but the
		// consumer stays defensive.
		content := msg.Content
		if len(content) > 500 {
			content = content[:500]
		}
		fmt.Fprintf(b, "%s\n\n", content)
		return
	}

	if fa, ok := doc["founder_analysis"].(map[string]any); ok {
		ma, _ := doc["market_analysis"].(map[string]any)
		renderScores(b, []scoreEntry{
			{"Founder Quality", fa["founder_quality_score"]},
			{"Market Gap", field(ma, "market_gap_score")},
			{"Bandwagon Risk", field(ma, "bandwagon_risk_score")},
			{"Defensibility", field(ma, "defensibility_score")},
		})
		writeNarrative(b, "Founders", fa["narrative"])
		writeNarrative(b, "Differentiation", field(ma, "differentiation"))
	}

	if s, ok := doc["sentiment"].(map[string]any); ok {
		renderScores(b, []scoreEntry{
			{"Overall Sentiment", s["overall_sentiment_score"]},
			{"Press", s["press_score"]},
			{"Community", s["community_score"]},
			{"Momentum", s["momentum_score"]},
		})
		writeNarrative(b, "Narrative", s["narrative"])
		writeList(b, "Red flags", s["red_flags"])
	}

	if v, ok := doc["valuation"].(map[string]any); ok {
		renderScores(b, []scoreEntry{
			{"Attractiveness", v["overall_attractiveness_score"]},
			{"Market Size", v["market_size_score"]},
			{"Comparables", v["comparable_score"]},
			{"Stage Fit", v["stage_fit_score"]},
		})
		writeNarrative(b, "TAM", v["tam_estimate"])
		writeNarrative(b, "Narrative", v["narrative"])
		writeList(b, "Key risks", v["key_risks"])
	}

	fmt.Fprintf(b, "> %s\n\n", ExtractSummary(msg))
}

type scoreEntry struct {
	label string
	value any
}

func renderScores(b *strings.Builder, entries []scoreEntry) {
	labels := make([]string, len(entries))
	values := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
		values[i] = formatScore(e.value)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(labels, " | "))
	fmt.Fprintf(b, "|%s\n", strings.Repeat(" --- |", len(entries)))
	fmt.Fprintf(b, "| %s |\n\n", strings.Join(values, " | "))
}

func formatScore(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.0f", n)
	case string:
		return n
	default:
		return "N/A"
	}
}

func field(doc map[string]any, key string) any {
	if doc == nil {
		return nil
	}
	return doc[key]
}

func writeNarrative(b *strings.Builder, label string, v any) {
	if s, ok := v.(string); ok && s != "" {
		fmt.Fprintf(b, "**%s**: %s\n\n", label, s)
	}
}

func writeList(b *strings.Builder, label string, v any) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, "**%s**: %s\n\n", label, strings.Join(parts, " · "))
	}
}

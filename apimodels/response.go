package apimodels

// Role distinguishes analyst reports from the judge's synthesis in a run
// transcript.
type Role string

const (
	RoleAnalyst Role = "analyst"
	RoleJudge   Role = "judge"
)

// Verdict is the binary investment decision.
type Verdict string

const (
	VerdictGo   Verdict = "GO"
	VerdictNoGo Verdict = "NOGO"
)

// Message is one transcript entry. Analyst message content is always a valid
// JSON document (the fallback-document policy guarantees this even when the
// model misbehaves); judge content is free text.
type Message struct {
	AgentName string `json:"agentName"`
	Content   string `json:"content"`
	Role      Role   `json:"role"`
}

// RunResult is the complete outcome of one orchestrator run.
type RunResult struct {
	Verdict Verdict `json:"verdict"`

	// Messages in analysis order: Discovery, Sentiment, Valuation, Judge.
	Messages []Message `json:"messages"`

	// Recommendations holds up to three follow-up targets, only populated
	// on a GO verdict.
	Recommendations []string `json:"recommendations,omitempty"`

	Metadata RunMetadata `json:"metadata"`
}

type RunMetadata struct {
	RunID         string        `json:"runId"`
	Company       string        `json:"company"`
	RiskTolerance RiskTolerance `json:"riskTolerance"`
	Duration      string        `json:"duration"`
}

// EligibilityDecision is the pre-filter's answer. It is transient: consumed
// to short-circuit or continue a run, never retained in RunResult.
type EligibilityDecision struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

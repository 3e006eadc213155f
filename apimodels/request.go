package apimodels

// RiskTolerance selects which prompt variant each analyst uses. The core
// never interprets prompt content; this is pure selection.
type RiskTolerance string

const (
	RiskNeutral RiskTolerance = "risk_neutral"
	RiskAverse  RiskTolerance = "risk_averse"
)

// Normalize maps unknown or empty values to RiskNeutral. Analysis inputs
// degrade rather than reject, matching the eligibility gate's fail-open
// posture.
func (rt RiskTolerance) Normalize() RiskTolerance {
	if rt == RiskAverse {
		return RiskAverse
	}
	return RiskNeutral
}

type AnalysisRequest struct {
	// Company is the startup name or short description to analyze.
	Company string `json:"company"`

	// RiskTolerance is "risk_neutral" (default) or "risk_averse".
	RiskTolerance RiskTolerance `json:"riskTolerance,omitempty"`

	// Format selects the response rendering: "json" (default) or "markdown".
	Format string `json:"format,omitempty"`
}

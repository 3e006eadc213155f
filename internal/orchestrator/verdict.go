package orchestrator

import (
	"strings"

	"github.com/EugeneWoo/investment-agent/apimodels"
)

// ParseVerdict classifies the judge's raw text output from its first line.
// The first line is uppercased and matched for "NOGO" or "NO GO" as a
// substring; anything else, including unrecognized text, is GO. The lenient
// match tolerates minor formatting deviation from the provider; the GO
// default on unrecognized output is a deliberate documented policy, not a
// missing case.
func ParseVerdict(text string) apimodels.Verdict {
	firstLine := strings.TrimSpace(text)
	if i := strings.Index(firstLine, "\n"); i >= 0 {
		firstLine = firstLine[:i]
	}
	firstLine = strings.ToUpper(strings.TrimSpace(firstLine))

	if strings.Contains(firstLine, "NOGO") || strings.Contains(firstLine, "NO GO") {
		return apimodels.VerdictNoGo
	}
	return apimodels.VerdictGo
}

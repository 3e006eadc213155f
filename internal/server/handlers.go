package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/EugeneWoo/investment-agent/apimodels"
	"github.com/EugeneWoo/investment-agent/internal/report"
)

// AnalyzeResponse wraps a run outcome. Result is absent when the
// eligibility gate blocked the run; the decision tells the caller why.
type AnalyzeResponse struct {
	Eligibility apimodels.EligibilityDecision `json:"eligibility"`
	Result      *apimodels.RunResult          `json:"result,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Company == "" {
		http.Error(w, "company is required", http.StatusBadRequest)
		return
	}

	slog.Debug("received analysis request", "company", req.Company, "risk_tolerance", req.RiskTolerance)

	decision := s.runner.CheckEligibility(r.Context(), req.Company)
	if !decision.Eligible {
		slog.Info("company blocked by eligibility gate", "company", req.Company, "reason", decision.Reason)
		writeJSON(w, http.StatusOK, AnalyzeResponse{Eligibility: decision})
		return
	}

	result, err := s.runner.Run(r.Context(), req.Company, req.RiskTolerance)
	if err != nil {
		slog.Error("analysis request failed", "company", req.Company, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if req.Format == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(report.Render(result)))
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{Eligibility: decision, Result: result})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

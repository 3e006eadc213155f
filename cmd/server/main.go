package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/EugeneWoo/investment-agent/apimodels"
	"github.com/EugeneWoo/investment-agent/internal/config"
	"github.com/EugeneWoo/investment-agent/internal/llm"
	"github.com/EugeneWoo/investment-agent/internal/orchestrator"
	"github.com/EugeneWoo/investment-agent/internal/search"
	"github.com/EugeneWoo/investment-agent/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	searchClient := search.NewClient(cfg.Tavily, search.NewCache())
	llmProvider := llm.NewOpenAI(&cfg.OpenAI)

	rt := apimodels.RiskTolerance(os.Getenv("RISK_TOLERANCE")).Normalize()
	orch := orchestrator.New(searchClient, llmProvider, rt)

	srv := server.New(*cfg, orch)
	slog.Info("starting investment-agent", "host", cfg.Server.Host, "port", cfg.Server.Port, "risk_tolerance", rt)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

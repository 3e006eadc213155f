package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/EugeneWoo/investment-agent/apimodels"
	"github.com/EugeneWoo/investment-agent/internal/config"
)

// Runner is the orchestrator surface the HTTP layer consumes.
type Runner interface {
	CheckEligibility(ctx context.Context, company string) apimodels.EligibilityDecision
	Run(ctx context.Context, company string, rt apimodels.RiskTolerance) (*apimodels.RunResult, error)
}

type Server struct {
	cfg    config.ServerConfig
	router *chi.Mux
	runner Runner
	server *http.Server
}

func New(cfg config.Config, runner Runner) *Server {
	s := &Server{
		cfg:    cfg.Server,
		router: chi.NewRouter(),
		runner: runner,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	// A full run fans out search queries and issues up to six completion
	// calls; the timeout bounds a hung provider, not a healthy run.
	s.router.Use(middleware.Timeout(5 * time.Minute))

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/health", s.handleHealth)
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until a listener error or shutdown
// signal, draining in-flight requests on shutdown.
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

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

	"github.com/brandscope/research-hub/internal/config"
	"github.com/brandscope/research-hub/internal/research"
)

type Server struct {
	cfg          config.ServerConfig
	router       *chi.Mux
	orchestrator *research.Orchestrator
	server       *http.Server
}

func New(cfg config.ServerConfig, orchestrator *research.Orchestrator) *Server {
	s := &Server{
		cfg:          cfg,
		router:       chi.NewRouter(),
		orchestrator: orchestrator,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/research", s.handleResearch)
		r.Post("/research/{category}", s.handleResearchSingle)
		r.Get("/agents", s.handleAgents)
		r.Get("/health", s.handleHealth)
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

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

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

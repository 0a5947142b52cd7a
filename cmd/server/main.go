// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/brandscope/research-hub/internal/agents"
	"github.com/brandscope/research-hub/internal/config"
	"github.com/brandscope/research-hub/internal/llm"
	"github.com/brandscope/research-hub/internal/research"
	"github.com/brandscope/research-hub/internal/server"
	"github.com/brandscope/research-hub/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	provider, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create inference provider: %v", err)
	}

	registry, err := agents.Registry(provider)
	if err != nil {
		log.Fatalf("failed to build agent registry: %v", err)
	}

	var repo research.Repository
	if cfg.Firestore.Project != "" {
		store, err := storage.NewFirestore(context.Background(), &cfg.Firestore)
		if err != nil {
			log.Fatalf("failed to create Firestore repository: %v", err)
		}
		defer store.Close()
		repo = store
	} else {
		slog.Warn("GOOGLE_CLOUD_PROJECT not set, research results will not be persisted")
	}

	orchestrator := research.New(registry, repo, research.Options{
		MaxConcurrent: cfg.Research.MaxConcurrentAgents,
		Timeout:       cfg.Research.Timeout,
	})

	srv := server.New(cfg.Server, orchestrator)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

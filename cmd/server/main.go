package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"helix/internal/bootstrap"
	"helix/internal/config"
	"helix/internal/handlers"
	"helix/internal/metrics"
	"helix/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Load corpus
	c, database, err := bootstrap.LoadCorpus(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	var pinger handlers.Pinger
	if database != nil {
		defer database.Close()
		pinger = database
	}

	metrics.Init(c)

	// Select answer producer
	svc, err := bootstrap.NewService(cfg, c, logger)
	if err != nil {
		log.Fatalf("Failed to configure answers: %v", err)
	}

	// Load example queries
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config.yaml: %v", err)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(svc, pinger, yamlCfg.Examples(), logger)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (answers: %s)", cfg.ServerAddr, svc.Mode())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"helix/internal/handlers"
	"helix/internal/handlers/api"
	"helix/internal/query"
)

// RegisterRoutes registers all application routes. database may be nil when
// the built-in corpus is used.
func (s *Server) RegisterRoutes(svc *query.Service, database handlers.Pinger, examples []string, logger *slog.Logger) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(svc, s.Cfg, examples, logger)
	probeHandler := handlers.NewProbeHandler(svc.Corpus(), database)
	queryAPI := api.NewQueryHandler(svc, s.Cfg, logger)
	corpusAPI := api.NewCorpusHandler(svc.Corpus())

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// JSON API
	s.App.Post("/api/query", queryAPI.Submit)
	s.App.Get("/api/records", corpusAPI.Records)
	s.App.Get("/api/targets", corpusAPI.Targets)

	// Page
	s.App.Get("/", pageHandler.Index)
}

package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"helix/internal/corpus"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	corpus *corpus.Corpus
	db     Pinger
}

// NewProbeHandler creates a new probe handler. database may be nil when the
// corpus is built in.
func NewProbeHandler(c *corpus.Corpus, database Pinger) *ProbeHandler {
	return &ProbeHandler{corpus: c, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the corpus is loaded and the corpus database, if any, is
// reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.corpus == nil || h.corpus.Empty() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "corpus not loaded",
		})
	}

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"records": h.corpus.RecordCount(),
		"targets": h.corpus.TargetCount(),
	})
}

package api

import (
	"github.com/gofiber/fiber/v3"

	"helix/internal/corpus"
	"helix/internal/models"
)

// CorpusHandler exposes the read-only corpus via JSON API.
type CorpusHandler struct {
	corpus *corpus.Corpus
}

// NewCorpusHandler creates a new API corpus handler.
func NewCorpusHandler(c *corpus.Corpus) *CorpusHandler {
	return &CorpusHandler{corpus: c}
}

// Records returns observation records, optionally filtered by ?status= or
// searched with ?q=.
func (h *CorpusHandler) Records(c fiber.Ctx) error {
	status := c.Query("status", "")
	term := c.Query("q", "")

	if status != "" && !models.IsValidStatus(status) {
		return jsonError(c, fiber.StatusBadRequest, "invalid status")
	}

	records := h.corpus.Records()
	if term != "" {
		records = h.corpus.Search(term)
	}
	if status != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.ValidationStatus == status {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return jsonList(c, records)
}

// Targets returns target summaries, optionally only outliers (?outlier=true)
// or those for an indication (?indication=).
func (h *CorpusHandler) Targets(c fiber.Ctx) error {
	var targets []models.TargetSummary
	switch {
	case c.Query("outlier", "") == "true":
		targets = h.corpus.OutlierTargets()
	case c.Query("indication", "") != "":
		targets = h.corpus.TargetsByIndication(c.Query("indication", ""))
	default:
		targets = h.corpus.Targets()
	}

	return jsonList(c, targets)
}

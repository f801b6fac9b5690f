package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"helix/internal/config"
	"helix/internal/models"
	"helix/internal/query"
)

// ResultView is a query result prepared for the results panel.
type ResultView struct {
	Query          string
	Answer         template.HTML
	ContextPreview template.HTML
	Records        []RecordView
	Counters       models.QueryCounters
}

// RecordView is a matched record with its display status.
type RecordView struct {
	models.ObservationRecord
	StatusLabel string
}

// PageHandler serves the single query page.
type PageHandler struct {
	svc      *query.Service
	cfg      *config.Config
	examples []string
	logger   *slog.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(svc *query.Service, cfg *config.Config, examples []string, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		svc:      svc,
		cfg:      cfg,
		examples: examples,
		logger:   logger.With(slog.String("module", "page")),
	}
}

// Index renders the query page. With ?q= it also runs the query; HTMX
// requests receive only the results panel.
func (h *PageHandler) Index(c fiber.Ctx) error {
	q := c.Query("q", "")

	data := fiber.Map{
		"Query":    q,
		"Examples": h.examples,
		"Mode":     h.svc.Mode(),
		"Counters": corpusStats(h.svc.Corpus()),
	}

	if strings.TrimSpace(q) == "" {
		if isHTMX(c) {
			return htmxError(c, "Please enter a question")
		}
		return c.Render("index", MergeBranding(data, h.cfg))
	}

	result, err := h.svc.Handle(c.Context(), q)
	if err != nil {
		msg := "Failed to process query"
		if errors.Is(err, query.ErrInvalidQuery) {
			msg = strings.TrimPrefix(err.Error(), query.ErrInvalidQuery.Error()+": ")
		}
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		data["Error"] = msg
		return c.Render("index", MergeBranding(data, h.cfg))
	}

	data["Result"] = h.resultView(result)
	if isHTMX(c) {
		return c.Render("partials/results", data, "")
	}
	return c.Render("index", MergeBranding(data, h.cfg))
}

func (h *PageHandler) resultView(r *models.QueryResult) ResultView {
	resp := query.NewResponse(r, h.cfg.ContextPreviewLength)

	records := make([]RecordView, len(resp.MatchedRecords))
	for i, rec := range resp.MatchedRecords {
		records[i] = RecordView{
			ObservationRecord: rec,
			StatusLabel:       strings.ReplaceAll(rec.ValidationStatus, "_", " "),
		}
	}

	return ResultView{
		Query:          r.Query,
		Answer:         FormatAnswer(resp.Answer),
		ContextPreview: RenderMarkdown(resp.ContextPreview),
		Records:        records,
		Counters:       resp.Counters,
	}
}

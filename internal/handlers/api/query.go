package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"helix/internal/config"
	"helix/internal/models"
	"helix/internal/query"
	"helix/internal/validation"
)

// QueryHandler handles query submission via JSON API.
type QueryHandler struct {
	svc    *query.Service
	cfg    *config.Config
	logger *slog.Logger
}

// NewQueryHandler creates a new API query handler.
func NewQueryHandler(svc *query.Service, cfg *config.Config, logger *slog.Logger) *QueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryHandler{svc: svc, cfg: cfg, logger: logger.With(slog.String("module", "api"))}
}

// Submit answers one query.
func (h *QueryHandler) Submit(c fiber.Ctx) error {
	var body models.QueryRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "query is required")
	}

	if valid, msg := validation.ValidateQuery(body.Query); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result, err := h.svc.Handle(c.Context(), body.Query)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			return jsonError(c, fiber.StatusBadRequest, "query is required")
		}
		h.logger.Error("query failed",
			slog.String("fingerprint", query.Fingerprint(body.Query)),
			slog.Any("error", err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to process query")
	}

	return jsonSuccess(c, query.NewResponse(result, h.cfg.ContextPreviewLength))
}

package query

import "helix/internal/models"

// DefaultPreviewLength is how much of the assembled context is returned to
// callers.
const DefaultPreviewLength = 500

// NewResponse converts a result into the wire shape. The context preview is
// the first previewLen characters of the context followed by an ellipsis.
func NewResponse(r *models.QueryResult, previewLen int) models.QueryResponse {
	if previewLen <= 0 {
		previewLen = DefaultPreviewLength
	}
	records := r.Records
	if records == nil {
		records = []models.ObservationRecord{}
	}
	return models.QueryResponse{
		Answer:         r.Answer,
		ContextPreview: truncate(r.Context, previewLen) + "...",
		MatchedRecords: records,
		Counters: models.QueryCounters{
			TotalRecords: r.TotalRecords,
			TotalTargets: r.TotalTargets,
			Timestamp:    r.GeneratedAt,
			QueryID:      r.ID,
			Mode:         r.Mode,
		},
	}
}

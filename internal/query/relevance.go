package query

import (
	"strings"

	"helix/internal/corpus"
	"helix/internal/models"
	"helix/internal/validation"
)

// DefaultRecordLimit caps the matched records returned with an answer.
const DefaultRecordLimit = 5

// FilterRelevant returns, in corpus order, at most limit records whose gene,
// mouse model or notes contain the whole lowercased query, plus every outlier
// record when the query mentions outliers. A non-positive limit means
// DefaultRecordLimit.
func FilterRelevant(query string, c *corpus.Corpus, limit int) []models.ObservationRecord {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}

	q := validation.NormalizeQuery(query)
	wantOutliers := strings.Contains(q, "outlier")

	matched := c.FilterRecords(func(r models.ObservationRecord) bool {
		if strings.Contains(strings.ToLower(r.Gene), q) ||
			strings.Contains(strings.ToLower(r.MouseModel), q) ||
			strings.Contains(strings.ToLower(r.Notes), q) {
			return true
		}
		return wantOutliers && r.ValidationStatus == models.StatusOutlier
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

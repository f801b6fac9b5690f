package models

// Validation status constants
const (
	StatusValidated    = "validated"
	StatusUnderReview  = "under_review"
	StatusOutlier      = "outlier"
	StatusInconclusive = "inconclusive"
)

// Therapeutic relevance constants
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// ObservationRecord is one spatial transcriptomics measurement: expression of
// a gene at a tissue location in a mouse model.
type ObservationRecord struct {
	ID                   string  `json:"id"`
	Date                 Date    `json:"date"`
	MouseModel           string  `json:"mouse_model"`
	Tissue               string  `json:"tissue"`
	Gene                 string  `json:"gene"`
	ExpressionLevel      float64 `json:"expression_level"`
	NormalizedExpression float64 `json:"normalized_expression"`
	SpatialRegion        string  `json:"spatial_region"`
	ExperimentID         string  `json:"experiment_id"`
	Researcher           string  `json:"researcher"`
	ValidationStatus     string  `json:"validation_status"` // validated, under_review, outlier, inconclusive
	Notes                string  `json:"notes"`
	TherapeuticRelevance string  `json:"therapeutic_relevance"` // high, medium, low
}

// IsOutlier returns true if the record was flagged as an outlier.
func (r *ObservationRecord) IsOutlier() bool {
	return r.ValidationStatus == StatusOutlier
}

// IsValidStatus reports whether s is a known validation status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusValidated, StatusUnderReview, StatusOutlier, StatusInconclusive:
		return true
	}
	return false
}

// IsValidRelevance reports whether s is a known therapeutic relevance tier.
func IsValidRelevance(s string) bool {
	switch s {
	case RelevanceHigh, RelevanceMedium, RelevanceLow:
		return true
	}
	return false
}

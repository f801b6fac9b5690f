package models

// TargetSummary is an aggregated assessment of one gene's therapeutic
// validation status. GeneName matches ObservationRecord.Gene by convention
// only.
type TargetSummary struct {
	TargetID              string  `json:"target_id"`
	GeneName              string  `json:"gene_name"`
	Pathway               string  `json:"pathway"`
	DiseaseIndication     string  `json:"disease_indication"`
	ValidationScore       float64 `json:"validation_score"`
	OutlierFlag           bool    `json:"outlier_flag"`
	ConfidenceLevel       float64 `json:"confidence_level"`
	SupportingExperiments int     `json:"supporting_experiments"`
	LastUpdated           Date    `json:"last_updated"`
	Summary               string  `json:"summary"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer mode constants
const (
	ModeDelegated = "delegated"
	ModeLocal     = "local"
)

// QueryResult is the outcome of one query. It is created per request and
// discarded once returned.
type QueryResult struct {
	ID           uuid.UUID
	Query        string
	Answer       string
	Context      string
	Records      []ObservationRecord
	TotalRecords int
	TotalTargets int
	Mode         string
	GeneratedAt  time.Time
}

// QueryRequest is the inbound body of a query submission.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the wire shape returned to callers.
type QueryResponse struct {
	Answer         string              `json:"answer"`
	ContextPreview string              `json:"context_preview"`
	MatchedRecords []ObservationRecord `json:"matched_records"`
	Counters       QueryCounters       `json:"counters"`
}

// QueryCounters carries corpus sizes and generation metadata.
type QueryCounters struct {
	TotalRecords int       `json:"total_records"`
	TotalTargets int       `json:"total_targets"`
	Timestamp    time.Time `json:"timestamp"`
	QueryID      uuid.UUID `json:"query_id"`
	Mode         string    `json:"mode"`
}

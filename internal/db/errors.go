package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrEmptyCorpus is returned when the corpus tables hold no records.
	ErrEmptyCorpus = errors.New("corpus database has no records")
)

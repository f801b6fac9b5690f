package query

import "errors"

var (
	// ErrInvalidQuery is returned for a missing, blank or oversized query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUpstream wraps any failure of the delegated text-generation call.
	ErrUpstream = errors.New("upstream generation failed")
)

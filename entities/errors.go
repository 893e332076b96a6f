package entities

import "errors"

// Error taxonomy shared by every repository and service. Callers branch with
// errors.Is; repositories map driver errors onto these before returning.
var (
	// ErrNotFound: a detail lookup referenced an id with no matching row.
	// A list query with zero results is a valid empty outcome, never this.
	ErrNotFound = errors.New("record not found")

	// ErrValidation: required field missing, numeric text unparsable, or a
	// foreign id pointing at a nonexistent record.
	ErrValidation = errors.New("validation failed")

	// ErrStorage: the persistence layer failed underneath a read or write.
	ErrStorage = errors.New("storage failure")
)

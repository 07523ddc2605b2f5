package types

import "errors"

// Error kinds returned by the engine. Callers match them with errors.Is;
// individual sites wrap them with fmt.Errorf("%w: ...") for detail.
var (
	// ErrBadFormat indicates a performance expectation code that does not
	// match the grade-band + discipline + numeric-segment pattern.
	ErrBadFormat = errors.New("invalid standard code format")

	// ErrUnknownCategory indicates a category outside the closed NGSS set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidQuery indicates a free-text query that is empty, too long,
	// or matches a blocked injection pattern.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrOutOfRange indicates a limit or offset outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotFound indicates a well-formed code that has no record. A plain
	// lookup miss is reported to clients as a no-match result; a missing
	// compatibility anchor is a hard failure.
	ErrNotFound = errors.New("standard not found")
)

// Corpus validation errors. Any of these at load time is fatal: the server
// must not start with a partially valid corpus.
var (
	ErrMissingCode   = errors.New("record code is required")
	ErrMissingField  = errors.New("record field is required")
	ErrDuplicateCode = errors.New("duplicate record code")
	ErrEmptyCorpus   = errors.New("corpus contains no records")
)

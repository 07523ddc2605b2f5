// Package validate enforces input contracts before any lookup runs.
//
// All functions are pure: they inspect their argument, return a typed error
// from pkg/types on violation, and never touch the indexes. Query returns a
// sanitized copy of its input on success; every other validator returns
// only an error.
//
// Validation always runs before index or scoring logic, so a failed call
// produces an immediate typed error and never a partial result.
package validate

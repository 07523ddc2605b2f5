// Package cache provides a bounded, time-expiring key/value store for
// query results.
//
// Entries expire lazily: a Get past the TTL evicts the entry and counts a
// miss, so no background sweeper runs. When full, Set evicts the entry
// with the oldest insertion timestamp; reads do not refresh an entry's
// eviction position.
//
// Key builds deterministic cache keys from an operation name and its
// parameters sorted by name, so semantically identical calls always hit
// the same entry.
package cache

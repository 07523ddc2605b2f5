// Package index builds the read-only retrieval structures over the loaded
// corpus.
//
// Build runs exactly once at startup and produces three indexes:
//
//   - primary: code -> record, bijective with the corpus
//   - category: discipline -> records, an exact partition of the corpus
//   - inverted: normalized term -> set of record codes
//
// The inverted index is populated by tokenizing each record's combined
// topic, description, and keyword text with the same Tokenize rule applied
// to incoming queries.
//
// Indexes are immutable after Build. Every other component holds a
// read-only reference, which makes them safe to share across concurrent
// callers without locks.
package index

// Package corpus loads the immutable record set the engine serves.
//
// The corpus is produced by an external batch that parses the source
// standards documents; this package only reads its output, either a JSON
// array of records or a SQLite catalog. Loading happens exactly once at
// startup: a schema violation (missing fields, unknown category, duplicate
// codes) fails the load whole, and the server refuses to start rather than
// serve partial data.
//
// SQLite catalogs are read through the driver selected at build time
// (build_cgo.go / build_purego.go).
package corpus

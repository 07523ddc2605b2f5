//go:build cgo && !purego
// +build cgo,!purego

package corpus

// This file is compiled when building with CGO available. It selects the
// C SQLite driver for reading corpus catalogs.
//
// Build command:
//   CGO_ENABLED=1 go build ./...
//
// Driver used: github.com/mattn/go-sqlite3

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the SQLite driver used for corpus catalogs.
	DriverName = "sqlite3"

	// BuildMode describes the current build configuration.
	BuildMode = "cgo"
)

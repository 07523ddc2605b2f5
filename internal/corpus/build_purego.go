//go:build !cgo || purego
// +build !cgo purego

package corpus

// This file is compiled without CGO or with the purego tag. It selects the
// pure Go SQLite driver, which requires no C compiler and cross-compiles
// freely; corpus loads are a one-shot startup read, so the performance
// difference does not matter here.
//
// Build command:
//   CGO_ENABLED=0 go build ./...
//
// Driver used: modernc.org/sqlite

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver used for corpus catalogs.
	DriverName = "sqlite"

	// BuildMode describes the current build configuration.
	BuildMode = "purego"
)

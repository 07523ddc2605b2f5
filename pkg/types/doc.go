// Package types provides shared type definitions for the NGSS MCP server.
//
// This package defines the domain types used across components: records,
// classification components, result shapes, and the error kinds returned by
// the retrieval engine.
//
// # Core Types
//
// Record represents one NGSS performance expectation:
//
//	rec := &types.Record{
//	    Code:     "MS-PS1-4",
//	    Category: types.CategoryPhysicalScience,
//	    Topic:    "Matter and Its Interactions",
//	    Components: types.Components{
//	        SEP: types.Component{Code: "SEP-2", Name: "Developing and Using Models"},
//	        DCI: types.Component{Code: "PS1.A", Name: "Structure and Properties of Matter"},
//	        CCC: types.Component{Code: "CCC-5", Name: "Energy and Matter"},
//	    },
//	}
//
// Each of the three classification dimensions (SEP, DCI, CCC) holds exactly
// one component; dimensions are never lists.
//
// # Error Kinds
//
// Engine failures are reported through sentinel errors matched with
// errors.Is:
//
//	if errors.Is(err, types.ErrNotFound) {
//	    // well-formed code, no record
//	}
//
// # Validation
//
// Record implements Validate to ensure corpus integrity; a single invalid
// record rejects the whole corpus at load time.
package types

// Package mcp implements the Model Context Protocol (MCP) adapter for the
// NGSS retrieval engine.
//
// The server exposes six tools to AI assistants and other MCP clients:
//   - lookup_standard: Retrieve a standard by its exact code
//   - search_standards: Keyword search over topics, descriptions, and keywords
//   - match_standard: Fuzzy-match a natural language phrase against aliases
//   - related_standards: Rank standards by dimensional compatibility
//   - list_categories: Enumerate disciplines with record counts
//   - get_metrics: Report query and cache statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// Stdout carries protocol frames only; all logging goes to stderr.
//
// # Error Mapping
//
// Engine error kinds map to stable protocol codes so clients can branch
// without parsing messages: bad code format (-32001), unknown category
// (-32002), invalid query (-32003), range violations (-32004), and code
// not found (-32005). A lookup miss is the one exception: lookup_standard
// reports it as a successful {"found": false} result rather than an error,
// since probing for existence is a normal client pattern.
//
// The adapter is a thin presentation layer. All retrieval semantics,
// validation, caching, and ranking live in internal/engine; the adapter
// only shapes arguments in and JSON out.
package mcp

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ngss-tools/ngss-mcp/internal/engine"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeBadFormat       = -32001 // Code fails the lexical pattern
	ErrorCodeUnknownCategory = -32002 // Category outside the closed set
	ErrorCodeInvalidQuery    = -32003 // Query empty, too long, or blocked
	ErrorCodeOutOfRange      = -32004 // limit/offset out of bounds
	ErrorCodeNotFound        = -32005 // No record for a well-formed code
)

// descriptionLimit truncates long text in default responses to keep
// payloads small for automated callers; pass full=true for complete text.
const descriptionLimit = 240

// handleLookupStandard handles the lookup_standard tool invocation
func (s *Server) handleLookupStandard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	code, ok := args["code"].(string)
	if !ok || code == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "code parameter is required", map[string]interface{}{
			"param":  "code",
			"reason": "missing or empty",
		})
	}
	full := getBoolDefault(args, "full", false)

	rec, err := s.engine.Lookup(code)
	if errors.Is(err, types.ErrNotFound) {
		// A lookup miss is a no-match result, not a protocol failure.
		return mcp.NewToolResultText(formatJSON(map[string]interface{}{
			"found": false,
			"code":  code,
		})), nil
	}
	if err != nil {
		return nil, engineError(err)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"found":    true,
		"standard": formatRecord(rec, full),
	})), nil
}

// handleSearchStandards handles the search_standards tool invocation
func (s *Server) handleSearchStandards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing",
		})
	}

	opts := engine.SearchOptions{
		Category: getStringDefault(args, "category", ""),
		Limit:    getIntDefault(args, "limit", s.defaultLimit),
		Offset:   getIntDefault(args, "offset", 0),
	}

	hits, err := s.engine.Search(query, opts)
	if err != nil {
		return nil, engineError(err)
	}

	results := make([]map[string]interface{}, 0, len(hits))
	for _, h := range hits {
		results = append(results, map[string]interface{}{
			"score":    h.Score,
			"standard": formatRecord(h.Record, false),
		})
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"query":   query,
		"offset":  opts.Offset,
		"limit":   opts.Limit,
		"results": results,
	})), nil
}

// handleMatchStandard handles the match_standard tool invocation
func (s *Server) handleMatchStandard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeInvalidQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}
	limit := getIntDefault(args, "limit", s.defaultLimit)
	if limit < 1 || limit > 50 {
		return nil, newMCPError(ErrorCodeOutOfRange, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	matches, err := s.engine.Match(query)
	if err != nil {
		return nil, engineError(err)
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]map[string]interface{}, 0, len(matches))
	for _, m := range matches {
		results = append(results, map[string]interface{}{
			"confidence":    m.Confidence,
			"matched_alias": m.MatchedAlias,
			"standard":      formatRecord(m.Record, false),
		})
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"query":   query,
		"matches": results,
	})), nil
}

// handleRelatedStandards handles the related_standards tool invocation
func (s *Server) handleRelatedStandards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	code, ok := args["code"].(string)
	if !ok || code == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "code parameter is required", map[string]interface{}{
			"param":  "code",
			"reason": "missing or empty",
		})
	}
	pool := getStringSlice(args, "pool")
	limit := getIntDefault(args, "limit", s.defaultLimit)
	if limit < 1 || limit > 50 {
		return nil, newMCPError(ErrorCodeOutOfRange, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	related, err := s.engine.Related(code, pool)
	if err != nil {
		return nil, engineError(err)
	}
	if len(related) > limit {
		related = related[:limit]
	}

	results := make([]map[string]interface{}, 0, len(related))
	for _, r := range related {
		results = append(results, map[string]interface{}{
			"score":     r.Score,
			"breakdown": r.Breakdown,
			"standard":  formatRecord(r.Record, false),
		})
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"anchor":    code,
		"max_score": engine.MaxCompatibilityScore,
		"results":   results,
	})), nil
}

// handleListCategories handles the list_categories tool invocation
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"categories": s.engine.Categories(),
	})), nil
}

// handleGetMetrics handles the get_metrics tool invocation
func (s *Server) handleGetMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.engine.Metrics()
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"records":      snap.Records,
		"queries":      snap.Queries,
		"fuzzy_cache":  snap.FuzzyCache,
		"search_cache": snap.SearchCache,
	})), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// engineError maps an engine error kind to its MCP protocol code.
func engineError(err error) error {
	code := ErrorCodeInternalError
	switch {
	case errors.Is(err, types.ErrBadFormat):
		code = ErrorCodeBadFormat
	case errors.Is(err, types.ErrUnknownCategory):
		code = ErrorCodeUnknownCategory
	case errors.Is(err, types.ErrInvalidQuery):
		code = ErrorCodeInvalidQuery
	case errors.Is(err, types.ErrOutOfRange):
		code = ErrorCodeOutOfRange
	case errors.Is(err, types.ErrNotFound):
		code = ErrorCodeNotFound
	}
	return newMCPError(code, err.Error(), nil)
}

// formatRecord shapes a record for the wire. Long free text is truncated
// unless the caller asked for the full record; the engine itself always
// returns complete results, truncation is purely presentational.
func formatRecord(rec *types.Record, full bool) map[string]interface{} {
	out := map[string]interface{}{
		"code":        rec.Code,
		"category":    rec.Category,
		"topic":       rec.Topic,
		"description": truncate(rec.Description, full),
		"components": map[string]interface{}{
			"sep": formatComponent(rec.Components.SEP, full),
			"dci": formatComponent(rec.Components.DCI, full),
			"ccc": formatComponent(rec.Components.CCC, full),
		},
	}
	if len(rec.Aliases) > 0 {
		out["aliases"] = rec.Aliases
	}
	if len(rec.Keywords) > 0 {
		out["keywords"] = rec.Keywords
	}
	if rec.Scope.Clarification != "" {
		out["clarification"] = truncate(rec.Scope.Clarification, full)
	}
	if rec.Scope.AssessmentBoundary != "" {
		out["assessment_boundary"] = truncate(rec.Scope.AssessmentBoundary, full)
	}
	return out
}

func formatComponent(c types.Component, full bool) map[string]interface{} {
	return map[string]interface{}{
		"code":        c.Code,
		"name":        c.Name,
		"description": truncate(c.Description, full),
	}
}

func truncate(s string, full bool) string {
	if full || len(s) <= descriptionLimit {
		return s
	}
	return s[:descriptionLimit] + "..."
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string array parameter
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

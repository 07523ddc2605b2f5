package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// lookupStandardTool returns the tool definition for lookup_standard
func lookupStandardTool() mcp.Tool {
	return mcp.Tool{
		Name:        "lookup_standard",
		Description: "Look up an NGSS performance expectation by its code",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "Performance expectation code, e.g. \"MS-PS1-4\"",
				},
				"full": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, return untruncated descriptions and scope statements",
					"default":     false,
				},
			},
			Required: []string{"code"},
		},
	}
}

// searchStandardsTool returns the tool definition for search_standards
func searchStandardsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_standards",
		Description: "Search standards by keyword overlap with topic, description, and keyword text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Keyword query (max 500 characters)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Optional category filter: Physical Science, Life Science, Earth and Space Science, or Engineering",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-50)",
					"default":     DefaultSearchLimit,
					"minimum":     1,
					"maximum":     50,
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "Number of ranked results to skip",
					"default":     0,
					"minimum":     0,
				},
			},
			Required: []string{"query"},
		},
	}
}

// matchStandardTool returns the tool definition for match_standard
func matchStandardTool() mcp.Tool {
	return mcp.Tool{
		Name:        "match_standard",
		Description: "Fuzzy-match a natural language phrase against standard aliases using edit distance",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural language phrasing of a standard, e.g. \"what do we know about energy?\"",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of matches to return (1-50)",
					"default":     DefaultSearchLimit,
					"minimum":     1,
					"maximum":     50,
				},
			},
			Required: []string{"query"},
		},
	}
}

// relatedStandardsTool returns the tool definition for related_standards
func relatedStandardsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "related_standards",
		Description: "Rank standards by classification compatibility with an anchor standard (category, practice, core idea, crosscutting concept)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"code": map[string]interface{}{
					"type":        "string",
					"description": "Anchor performance expectation code",
				},
				"pool": map[string]interface{}{
					"type":        "array",
					"description": "Optional candidate codes; defaults to the whole corpus",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of candidates to return (1-50)",
					"default":     DefaultSearchLimit,
					"minimum":     1,
					"maximum":     50,
				},
			},
			Required: []string{"code"},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_categories",
		Description: "List the NGSS categories with record counts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getMetricsTool returns the tool definition for get_metrics
func getMetricsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_metrics",
		Description: "Report process-lifetime query timing and cache effectiveness counters",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

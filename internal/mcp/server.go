package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ngss-tools/ngss-mcp/internal/engine"
)

const (
	// ServerName is the MCP server name.
	ServerName = "ngss-mcp"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"

	// DefaultSearchLimit applies when a client omits the limit parameter.
	DefaultSearchLimit = 10
)

// Server wraps the MCP server with the retrieval engine. The engine is
// injected at construction; the adapter owns no state of its own beyond
// the protocol plumbing.
type Server struct {
	mcp          *server.MCPServer
	engine       *engine.Engine
	log          *slog.Logger
	defaultLimit int
}

// Options configures the protocol adapter.
type Options struct {
	DefaultLimit int
	Logger       *slog.Logger
}

// NewServer creates an MCP server exposing the engine's operations as
// tools.
func NewServer(eng *engine.Engine, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	limit := opts.DefaultLimit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	s := &Server{
		mcp:          server.NewMCPServer(ServerName, ServerVersion),
		engine:       eng,
		log:          log.With("component", "mcp"),
		defaultLimit: limit,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(lookupStandardTool(), s.handleLookupStandard)
	s.mcp.AddTool(searchStandardsTool(), s.handleSearchStandards)
	s.mcp.AddTool(matchStandardTool(), s.handleMatchStandard)
	s.mcp.AddTool(relatedStandardsTool(), s.handleRelatedStandards)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
	s.mcp.AddTool(getMetricsTool(), s.handleGetMetrics)
}

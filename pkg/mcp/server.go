// Package mcp exposes a finished usage report over the Model Context
// Protocol, so agents can query component usage without re-scanning.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/propscope/pkg/mcplog"
	"github.com/gnana997/propscope/pkg/report"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for propscope, exposing query tools
// over a previously generated report document.
type Server struct {
	mcpServer *server.MCPServer
	doc       *report.Document
	logger    *mcplog.Logger // nil disables call logging
}

// NewServer creates an MCP server backed by the given report document.
// The logger may be nil.
func NewServer(doc *report.Document, logger *mcplog.Logger) *Server {
	s := &Server{doc: doc, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("propscope", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: getComponentUsageTool(), Handler: s.handleGetComponentUsage},
		server.ServerTool{Tool: getPropValuesTool(), Handler: s.handleGetPropValues},
		server.ServerTool{Tool: getDefaultFindingsTool(), Handler: s.handleGetDefaultFindings},
		server.ServerTool{Tool: searchReferencesTool(), Handler: s.handleSearchReferences},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/propscope/pkg/mcplog"
)

// loggingMiddleware wraps every tool handler with a JSONL call record:
// tool name, sanitized params, duration, response size, and the error
// string when the handler fails. Installed only when a logger is
// configured.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := mcplog.Now()
			result, err := next(ctx, req)

			entry := mcplog.Entry{
				Time:          start.UTC().Format(time.RFC3339),
				Tool:          req.Params.Name,
				Params:        mcplog.SanitizeParams(req.GetArguments()),
				DurationMs:    time.Since(start).Milliseconds(),
				ResponseBytes: mcplog.ResultBytes(result),
			}
			if err != nil {
				entry.Error = err.Error()
			}
			_ = s.logger.Write(entry)

			return result, err
		}
	}
}

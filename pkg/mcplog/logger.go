// Package mcplog records the report server's tool calls as append-only
// JSONL, one entry per call, so agent sessions can be audited offline.
package mcplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Entry is one logged tool call.
type Entry struct {
	Time          string         `json:"time"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params,omitempty"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	Error         string         `json:"error,omitempty"`
}

// Logger appends entries to a JSONL file. Safe for concurrent use.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewLogger opens path for appending, creating parent directories as
// needed. An empty path returns (nil, nil); a nil *Logger means call
// logging is disabled and the serve path installs no middleware.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("mcplog: create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("mcplog: open log file: %w", err)
	}
	return &Logger{file: file, enc: json.NewEncoder(file)}, nil
}

// Write appends one entry. Callers ignore the error so a full disk
// never fails a tool call.
func (l *Logger) Write(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry)
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// maxParamLength caps logged string parameters. Tool params here are
// component names, prop names, and small limits; anything longer is a
// payload that doesn't belong in the log.
const maxParamLength = 80

// SanitizeParams copies args for logging, replacing any string longer
// than maxParamLength with a "<N bytes>" size marker under the same key.
// Returns nil for empty input so the entry omits the field.
func SanitizeParams(args map[string]any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]any, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok && len(s) > maxParamLength {
			out[k] = fmt.Sprintf("<%d bytes>", len(s))
			continue
		}
		out[k] = v
	}
	return out
}

// ResultBytes returns the serialized length of a tool result's content,
// 0 for nil results or marshal failures.
func ResultBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}

// Now is a replaceable clock for testing.
var Now = func() time.Time { return time.Now() }

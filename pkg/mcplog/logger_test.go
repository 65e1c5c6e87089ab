package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeParams(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "nil map returns nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "tool params pass through",
			input: map[string]any{"component": "Button", "prop": "tone", "limit": float64(25)},
			want:  map[string]any{"component": "Button", "prop": "tone", "limit": float64(25)},
		},
		{
			name:  "long string replaced by size marker",
			input: map[string]any{"component": strings.Repeat("x", 200)},
			want:  map[string]any{"component": "<200 bytes>"},
		},
		{
			name:  "nil value passes through",
			input: map[string]any{"prop": nil},
			want:  map[string]any{"prop": nil},
		},
		{
			name: "only oversized strings are rewritten",
			input: map[string]any{
				"component": "Card",
				"prop":      strings.Repeat("y", maxParamLength+1),
			},
			want: map[string]any{
				"component": "Card",
				"prop":      "<81 bytes>",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeParams(tc.input))
		})
	}
}

func TestSanitizeParams_BoundaryLengthKept(t *testing.T) {
	exact := strings.Repeat("z", maxParamLength)
	out := SanitizeParams(map[string]any{"component": exact})
	assert.Equal(t, exact, out["component"])
}

func TestResultBytes_Nil(t *testing.T) {
	assert.Zero(t, ResultBytes(nil))
}

func readEntries(t *testing.T, path string) []Entry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		var e Entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e), "line %d", len(entries)+1)
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)

	entries := []Entry{
		{Time: time.Now().UTC().Format(time.RFC3339), Tool: "list_components", DurationMs: 2, ResponseBytes: 340},
		{Time: time.Now().UTC().Format(time.RFC3339), Tool: "get_prop_values", Params: map[string]any{"component": "Button", "prop": "tone"}, DurationMs: 4, ResponseBytes: 120},
		{Time: time.Now().UTC().Format(time.RFC3339), Tool: "search_references", Params: map[string]any{"component": "Card", "limit": 10}, DurationMs: 1, ResponseBytes: 88, Error: "component not found: Card"},
	}
	for _, e := range entries {
		require.NoError(t, logger.Write(e))
	}
	require.NoError(t, logger.Close())

	got := readEntries(t, path)
	require.Len(t, got, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Tool, got[i].Tool)
		assert.Equal(t, e.DurationMs, got[i].DurationMs)
		assert.Equal(t, e.Error, got[i].Error)
	}
}

func TestLoggerConcurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)

	const goroutines = 50
	const writesEach = 10

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < writesEach; j++ {
				_ = logger.Write(Entry{
					Time: time.Now().UTC().Format(time.RFC3339),
					Tool: "list_components",
				})
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	// Every line must parse; a torn write would fail the decode.
	got := readEntries(t, path)
	assert.Len(t, got, goroutines*writesEach)
}

func TestNewLoggerCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "calls.jsonl")

	logger, err := NewLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewLoggerEmptyPathDisablesLogging(t *testing.T) {
	logger, err := NewLogger("")
	require.NoError(t, err)
	assert.Nil(t, logger)
}

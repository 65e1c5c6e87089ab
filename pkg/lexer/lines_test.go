package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineNumberAt(t *testing.T) {
	text := "one\ntwo\nthree"

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"negative offset", -5, 1},
		{"zero offset", 0, 1},
		{"first line", 2, 1},
		{"newline itself not yet counted", 3, 1},
		{"start of second line", 4, 2},
		{"third line", 9, 3},
		{"past end", 1000, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineNumberAt(text, tt.offset))
		})
	}
}

func TestLineNumberAt_Empty(t *testing.T) {
	for _, offset := range []int{-1, 0, 1, 100} {
		assert.Equal(t, 1, LineNumberAt("", offset))
	}
}

func TestLineNumberAt_Monotonic(t *testing.T) {
	text := "a\nbb\n\nccc\nd"
	prev := 0
	for offset := -2; offset <= len(text)+2; offset++ {
		line := LineNumberAt(text, offset)
		assert.GreaterOrEqual(t, line, prev, "offset %d", offset)
		prev = line
	}
}

func TestLineIndex_AgreesWithLinearScan(t *testing.T) {
	texts := []string{
		"",
		"no newline",
		"one\ntwo\nthree",
		"trailing\n",
		"\n\n\n",
		strings.Repeat("line\n", 50),
	}
	for _, text := range texts {
		ix := NewLineIndex(text)
		for offset := -1; offset <= len(text)+3; offset++ {
			assert.Equal(t, LineNumberAt(text, offset), ix.Line(offset),
				"text %q offset %d", text, offset)
		}
	}
}

func TestLineIndex_Lines(t *testing.T) {
	ix := NewLineIndex("a\nbb\nccc\n")
	assert.Equal(t, 1, ix.Lines(0, 1))  // within line 1
	assert.Equal(t, 2, ix.Lines(0, 2))  // spans lines 1-2
	assert.Equal(t, 3, ix.Lines(0, 6))  // spans lines 1-3
	assert.Equal(t, 0, ix.Lines(5, 2))  // inverted range
}

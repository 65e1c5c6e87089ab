package lexer

import (
	"sort"
	"strings"
)

// LineNumberAt converts a 0-based character offset to a 1-based line
// number by counting newlines strictly before the offset. Offsets at or
// below zero and empty text map to line 1; offsets past the end return
// the line implied by all newlines found. Linear in the offset; fine for
// one-off queries on file-sized inputs.
func LineNumberAt(text string, offset int) int {
	if offset <= 0 {
		return 1
	}
	if offset > len(text) {
		offset = len(text)
	}
	return 1 + strings.Count(text[:offset], "\n")
}

// LineIndex precomputes line-start offsets for repeated offset→line
// queries over one file.
type LineIndex struct {
	starts []int
}

// NewLineIndex builds the index in one pass over the text.
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 1, 64)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Line returns the 1-based line containing the offset. Agrees with
// LineNumberAt for every offset.
func (ix *LineIndex) Line(offset int) int {
	if offset <= 0 {
		return 1
	}
	return sort.SearchInts(ix.starts, offset+1)
}

// Lines returns the count of lines spanned by [start, end] inclusive.
func (ix *LineIndex) Lines(start, end int) int {
	if end < start {
		return 0
	}
	return ix.Line(end) - ix.Line(start) + 1
}

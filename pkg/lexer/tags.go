package lexer

import (
	"regexp"
	"sort"
	"strings"
)

// FindTagEnd scans forward from `from` and returns the offset of the first
// '>' at brace depth zero, or -1 if the text ends before the depth
// returns to zero. The caller must skip the occurrence on -1. Depth
// counting is the only mechanism: brace characters inside string or
// template literals are counted like any other, an accepted limitation of
// lexical scanning.
func FindTagEnd(text string, from int) int {
	depth := 0
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '>':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ScanTrackedInstances finds every opening tag of a tracked local name in
// the file text. This is a bare word-boundary match over raw text, not a
// JSX-context check. Unterminated tags are skipped entirely; no partial
// props are reported. Results are in source order with strictly
// increasing offsets.
func ScanTrackedInstances(text string, imports ImportMap) []Instance {
	if len(imports) == 0 {
		return nil
	}
	pattern := localNamePattern(imports)
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	instances := make([]Instance, 0, len(matches))
	for _, m := range matches {
		tagStart := m[0]
		nameEnd := m[3] // end of the component-name token
		tagEnd := FindTagEnd(text, nameEnd)
		if tagEnd < 0 {
			continue
		}
		local := text[m[2]:m[3]]
		instances = append(instances, Instance{
			Component: imports[local],
			Props:     ParseAttrs(text[nameEnd:tagEnd]),
			Offset:    tagStart,
			End:       tagEnd,
		})
	}
	return instances
}

// localNamePattern builds the `<(A|B|...)\b` alternation over the file's
// local binding names. Names are sorted longest-first for deterministic
// matching; the trailing word boundary keeps Card from matching inside
// CardTitle regardless.
func localNamePattern(imports ImportMap) *regexp.Regexp {
	names := make([]string, 0, len(imports))
	for local := range imports {
		names = append(names, local)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`<(` + strings.Join(names, "|") + `)\b`)
}

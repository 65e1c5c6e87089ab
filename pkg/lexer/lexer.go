// Package lexer implements the lexical JSX scanning core shared by every
// propscope analysis: import resolution, opening-tag boundary detection,
// attribute parsing, value classification/normalization, and offset→line
// mapping.
//
// It is deliberately not a parser. Scanning is regex plus brace-depth
// counting over raw text, which trades exactness for speed and robustness
// on arbitrary front-end source. Known limitation: a literal `{`, `}` or
// `>` inside a string or template literal within an attribute value can
// desynchronize depth tracking. Callers accept the resulting
// approximations; the only recoverable failure is an unterminated tag,
// reported by the -1 sentinel from FindTagEnd and skipped.
package lexer

// Prop is one attribute parsed from a JSX opening tag, in source order.
//
// Value is one of:
//   - a single-quote-wrapped string preserving the original literal text,
//   - the literal text "true" for boolean shorthand,
//   - the trimmed raw text inside {...} for expression attributes.
type Prop struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Instance is one opening tag of a tracked component found in source text.
type Instance struct {
	// Component is the original (tracked) component name, after alias
	// resolution.
	Component string `json:"component"`
	Props     []Prop `json:"props"`
	// Offset is the 0-based offset of the opening '<'.
	Offset int `json:"offset"`
	// End is the offset of the terminating '>' (same for self-closing tags).
	End int `json:"end"`
}

// ImportMap maps a file-local binding name to the original tracked
// component name. Built fresh per file, discarded after that file's scan.
type ImportMap map[string]string

// Components returns the set of original component names present in the
// map. An aliased binding contributes its original name, so an import of
// `Button as Btn` still counts toward Button.
func (m ImportMap) Components() map[string]bool {
	out := make(map[string]bool, len(m))
	for _, original := range m {
		out[original] = true
	}
	return out
}

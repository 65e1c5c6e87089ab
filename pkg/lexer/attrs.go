package lexer

import "strings"

// ParseAttrs tokenizes the attribute span of an opening tag (the text
// between the component-name token and the terminating '>') into ordered
// name/value pairs.
//
// Quoted values are re-wrapped in single quotes regardless of the
// original quote style so downstream classification sees one literal
// shape. Expression values keep the raw text inside the braces, trimmed.
// Attributes with no value emit the boolean shorthand "true". Spread
// attributes are consumed and discarded.
func ParseAttrs(span string) []Prop {
	var props []Prop
	n := len(span)
	i := 0
	for i < n {
		for i < n && isSpace(span[i]) {
			i++
		}
		if i >= n {
			break
		}
		switch {
		case span[i] == '/':
			// Trailing self-close marker.
			return props
		case span[i] == '{':
			// Spread attribute: consume the balanced span, emit nothing.
			i = skipBalanced(span, i)
			continue
		case !isIdentStart(span[i]):
			// Stray character; not attribute syntax we recognize.
			i++
			continue
		}

		start := i
		i++
		for i < n && isIdentChar(span[i]) {
			i++
		}
		name := span[start:i]

		for i < n && isSpace(span[i]) {
			i++
		}
		if i >= n || span[i] != '=' {
			props = append(props, Prop{Name: name, Value: "true"})
			continue
		}
		i++ // consume '='
		for i < n && isSpace(span[i]) {
			i++
		}
		if i >= n {
			props = append(props, Prop{Name: name, Value: ""})
			break
		}

		switch c := span[i]; {
		case c == '"' || c == '\'':
			close := strings.IndexByte(span[i+1:], c)
			if close < 0 {
				// Unterminated literal: take the rest as the value.
				props = append(props, Prop{Name: name, Value: "'" + span[i+1:] + "'"})
				return props
			}
			props = append(props, Prop{Name: name, Value: "'" + span[i+1:i+1+close] + "'"})
			i += close + 2
		case c == '{':
			end := skipBalanced(span, i)
			inner := span[i+1 : balancedInnerEnd(span, i, end)]
			props = append(props, Prop{Name: name, Value: strings.TrimSpace(inner)})
			i = end
		default:
			// Malformed/bare token: consume to the next delimiter.
			start = i
			for i < n && !isSpace(span[i]) && span[i] != '/' && span[i] != '>' {
				i++
			}
			props = append(props, Prop{Name: name, Value: span[start:i]})
		}
	}
	return props
}

// skipBalanced consumes a {...} span starting at an opening brace and
// returns the index just past the matching close brace, or len(s) if the
// span never closes.
func skipBalanced(s string, i int) int {
	depth := 0
	for ; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(s)
}

// balancedInnerEnd returns the index of the closing brace for a span that
// skipBalanced ended at `end`, tolerating an unterminated span.
func balancedInnerEnd(s string, open, end int) int {
	if end > open && end <= len(s) && s[end-1] == '}' {
		return end - 1
	}
	return end
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c == '-' || (c >= '0' && c <= '9')
}

package lexer

import "regexp"

// Classification category tags. Plain string literals carry no tag: they
// classify to their unwrapped text.
const (
	CategoryArray      = "<array>"
	CategoryObject     = "<object>"
	CategoryFunction   = "<function>"
	CategoryHandler    = "<handler>"
	CategoryTernary    = "<ternary>"
	CategoryTemplate   = "<template>"
	CategoryVariable   = "<variable>"
	CategoryExpression = "<expression>"
)

var (
	numericPattern    = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	handlerPattern    = regexp.MustCompile(`^(handle|on)[A-Z]`)
	identifierPattern = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$.]*$`)
)

// Classify maps a raw attribute value to its semantic category. Pure,
// total, deterministic: the same input always yields the same result.
// The checks are ordered; the first match wins and the fallback is
// <expression>.
//
// An empty raw value (e.g. prop="") classifies as the empty string
// literal, not as an expression.
func Classify(raw string) string {
	switch {
	case raw == "":
		return ""
	case raw == "true" || raw == "false":
		return raw
	case numericPattern.MatchString(raw):
		return raw
	case isQuoted(raw):
		return raw[1 : len(raw)-1]
	case raw[0] == '[' && raw[len(raw)-1] == ']':
		return CategoryArray
	case raw[0] == '{' && raw[len(raw)-1] == '}':
		return CategoryObject
	case containsArrow(raw) || hasPrefix(raw, "function"):
		return CategoryFunction
	case handlerPattern.MatchString(raw):
		// Only reached when the value is not itself a function body, so a
		// handler-named arrow classifies as <function> above.
		return CategoryHandler
	case containsBoth(raw, '?', ':'):
		return CategoryTernary
	case raw[0] == '`':
		return CategoryTemplate
	case identifierPattern.MatchString(raw):
		return "<variable:" + raw + ">"
	default:
		return CategoryExpression
	}
}

// isQuoted reports whether the value is fully wrapped in a matching pair
// of quotes.
func isQuoted(raw string) bool {
	if len(raw) < 2 {
		return false
	}
	first := raw[0]
	return (first == '\'' || first == '"') && raw[len(raw)-1] == first
}

func containsArrow(raw string) bool {
	for i := 0; i+1 < len(raw); i++ {
		if raw[i] == '=' && raw[i+1] == '>' {
			return true
		}
	}
	return false
}

func containsBoth(raw string, a, b byte) bool {
	var hasA, hasB bool
	for i := 0; i < len(raw); i++ {
		if raw[i] == a {
			hasA = true
		}
		if raw[i] == b {
			hasB = true
		}
	}
	return hasA && hasB
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

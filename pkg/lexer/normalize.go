package lexer

import "strings"

// maxLiteralLength is the longest plain string literal counted verbatim.
// Longer strings are almost always prose (labels, descriptions) whose
// exact text is not a meaningful aggregation key.
const maxLiteralLength = 30

// Normalize collapses a classification into the key used for
// cross-instance aggregation:
//
//   - boolean and numeric literals pass through unchanged,
//   - plain string literals up to maxLiteralLength characters are
//     re-wrapped in double quotes and counted verbatim,
//   - longer plain strings collapse to <expression> (truncating would
//     collide distinct values while still looking like exact literals),
//   - <variable:name> collapses to <variable>, discarding the identifier,
//   - every other category tag passes through unchanged.
func Normalize(classified string) string {
	if isCategoryTag(classified) {
		if strings.HasPrefix(classified, "<variable:") {
			return CategoryVariable
		}
		return classified
	}
	if classified == "true" || classified == "false" || numericPattern.MatchString(classified) {
		return classified
	}
	if len(classified) > maxLiteralLength {
		return CategoryExpression
	}
	return `"` + classified + `"`
}

func isCategoryTag(classified string) bool {
	return len(classified) >= 2 && classified[0] == '<' && classified[len(classified)-1] == '>'
}

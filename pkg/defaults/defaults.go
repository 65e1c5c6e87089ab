// Package defaults guesses which explicitly written prop values match a
// component's built-in default and are therefore redundant. The guess is
// heuristic and advisory; consumers must treat a nil detection as "no
// default known" and never as proof that a value is required.
package defaults

import (
	"fmt"
	"strings"
)

// Confidence grades how much to trust a detection.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Detection describes one value judged to be a prop's built-in default.
type Detection struct {
	Value      string     `json:"value"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
	// Count is how many usages wrote this value explicitly.
	Count int `json:"count"`
	// Total is the prop's total usage count.
	Total int `json:"total"`
}

// Detector is the pluggable detection strategy. Detect receives the
// whole-population normalized value distribution for one prop of one
// component; it must only be invoked after aggregation across all files
// and codebases is complete. Returning nil means no default was detected.
type Detector interface {
	Detect(component, prop string, values map[string]int, total int) *Detection
}

// KnowledgeDetector combines three heuristics, strongest first: known
// default values per prop name, known default HTML elements for the `as`
// prop, and a statistical fallback for dominant literal values.
type KnowledgeDetector struct {
	propDefaults    map[string]string
	elementDefaults map[string]string
}

// NewKnowledgeDetector returns a detector loaded with the Sanity UI
// knowledge table.
func NewKnowledgeDetector() *KnowledgeDetector {
	return &KnowledgeDetector{
		propDefaults: map[string]string{
			"mode":      `"default"`,
			"tone":      `"default"`,
			"textAlign": `"left"`,
			"muted":     "false",
			"border":    "false",
			"disabled":  "false",
			"readOnly":  "false",
			"selected":  "false",
			"space":     "0",
			"padding":   "0",
			"margin":    "0",
			"radius":    "0",
		},
		elementDefaults: map[string]string{
			"Button":    `"button"`,
			"Card":      `"div"`,
			"Box":       `"div"`,
			"Flex":      `"div"`,
			"Grid":      `"div"`,
			"Stack":     `"div"`,
			"Inline":    `"div"`,
			"Container": `"div"`,
			"Text":      `"span"`,
			"Label":     `"label"`,
			"Heading":   `"h2"`,
		},
	}
}

// Statistical fallback thresholds. A value must be a literal (quoted
// string, boolean, or number), dominate the distribution, and have a
// reasonable population before it is reported.
const (
	minStatTotal = 10
	mediumShare  = 0.8
	lowShare     = 0.6
)

// Detect implements Detector.
func (d *KnowledgeDetector) Detect(component, prop string, values map[string]int, total int) *Detection {
	if total == 0 || len(values) == 0 {
		return nil
	}

	if known, ok := d.propDefaults[prop]; ok {
		if count, seen := values[known]; seen && count > 0 {
			return &Detection{
				Value:      known,
				Confidence: ConfidenceHigh,
				Reason:     fmt.Sprintf("known default for %q", prop),
				Count:      count,
				Total:      total,
			}
		}
		return nil
	}

	if prop == "as" {
		if element, ok := d.elementDefaults[component]; ok {
			if count, seen := values[element]; seen && count > 0 {
				return &Detection{
					Value:      element,
					Confidence: ConfidenceHigh,
					Reason:     fmt.Sprintf("default element for %s", component),
					Count:      count,
					Total:      total,
				}
			}
		}
		return nil
	}

	return d.statistical(prop, values, total)
}

// statistical reports a dominant literal value as a likely default.
func (d *KnowledgeDetector) statistical(prop string, values map[string]int, total int) *Detection {
	if total < minStatTotal {
		return nil
	}
	top, count := "", 0
	for value, n := range values {
		if !isLiteral(value) {
			continue
		}
		// Ties break to the lexically smaller value so detection is
		// deterministic regardless of map iteration order.
		if n > count || (n == count && value < top) {
			top, count = value, n
		}
	}
	if top == "" {
		return nil
	}
	share := float64(count) / float64(total)
	switch {
	case share >= mediumShare:
		return &Detection{
			Value:      top,
			Confidence: ConfidenceMedium,
			Reason:     fmt.Sprintf("dominant value for %q (%.0f%% of usages)", prop, share*100),
			Count:      count,
			Total:      total,
		}
	case share >= lowShare:
		return &Detection{
			Value:      top,
			Confidence: ConfidenceLow,
			Reason:     fmt.Sprintf("majority value for %q (%.0f%% of usages)", prop, share*100),
			Count:      count,
			Total:      total,
		}
	default:
		return nil
	}
}

// isLiteral reports whether a normalized value is a quoted string,
// boolean, or number. Category tags like <variable> never look like
// defaults.
func isLiteral(value string) bool {
	if value == "" {
		return false
	}
	if strings.HasPrefix(value, "<") {
		return false
	}
	return true
}

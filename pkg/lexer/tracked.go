package lexer

import (
	"regexp"
	"sort"
	"strings"
)

// TrackedSet is the compiled form of the tracked-component configuration:
// the component allowlist, the import source allow/deny substrings, and
// the derived name-alternation patterns. Build it once at configuration
// load and pass it explicitly to scanner calls; there is no package-level
// pattern cache.
type TrackedSet struct {
	components     map[string]bool
	importSources  []string
	excludeSources []string

	namePattern   *regexp.Regexp // <(A|B|...)\b over original names
	styledPattern *regexp.Regexp // styled(A|B|...) wrapper detection
}

// NewTrackedSet compiles a tracked set. Component names that do not start
// with an uppercase letter are ignored: only PascalCase exports are
// treated as components.
func NewTrackedSet(components, importSources, excludeSources []string) *TrackedSet {
	set := &TrackedSet{
		components:     make(map[string]bool, len(components)),
		importSources:  importSources,
		excludeSources: excludeSources,
	}
	var names []string
	for _, name := range components {
		if !startsUpper(name) {
			continue
		}
		if !set.components[name] {
			set.components[name] = true
			names = append(names, name)
		}
	}
	// Longer names first so alternation never shadows Card inside CardTitle.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	if len(names) == 0 {
		names = []string{`\bNOMATCH\b`} // never matches real source
	}
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}
	alternation := strings.Join(names, "|")
	set.namePattern = regexp.MustCompile(`<(` + alternation + `)\b`)
	set.styledPattern = regexp.MustCompile(`styled\(\s*(` + alternation + `)\s*\)`)
	return set
}

// Tracks reports whether the original component name is in the allowlist.
func (s *TrackedSet) Tracks(name string) bool {
	return s.components[name]
}

// Len returns the number of tracked components.
func (s *TrackedSet) Len() int {
	return len(s.components)
}

// TracksSource reports whether an import source belongs to the tracked
// library: it must contain at least one allowed substring and none of the
// excluded ones (e.g. a theme subpath).
func (s *TrackedSet) TracksSource(source string) bool {
	for _, excluded := range s.excludeSources {
		if excluded != "" && strings.Contains(source, excluded) {
			return false
		}
	}
	for _, allowed := range s.importSources {
		if allowed != "" && strings.Contains(source, allowed) {
			return true
		}
	}
	return false
}

// StyledWrappers counts styled(Component) wrapper declarations per tracked
// component in the file text.
func (s *TrackedSet) StyledWrappers(text string) map[string]int {
	matches := s.styledPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make(map[string]int)
	for _, m := range matches {
		out[m[1]]++
	}
	return out
}

func startsUpper(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

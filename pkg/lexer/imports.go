package lexer

import (
	"regexp"
	"strings"
)

// ImportStatement is one import statement found in file text. Ephemeral,
// produced per file.
type ImportStatement struct {
	// NamedImports is the raw text between the braces, or "" when the
	// statement has no named clause.
	NamedImports string
	// DefaultImport is the default binding name, or "" when absent.
	DefaultImport string
	// Source is the unquoted module specifier.
	Source string
	// Offset is the 0-based offset of the statement start.
	Offset int
}

// NamedBinding is one resolved named-import binding. Local defaults to
// Original when no alias is present.
type NamedBinding struct {
	Original string
	Local    string
}

// importPattern matches ES import statements of the shapes this scanner
// understands: a default clause, a named clause, or both, followed by a
// quoted source. Anything else (namespace imports, side-effect imports,
// malformed statements) is silently ignored.
var importPattern = regexp.MustCompile(
	`import\s+(?:([A-Za-z_$][A-Za-z0-9_$]*)\s*,\s*)?(?:\{([^}]*)\}\s*|([A-Za-z_$][A-Za-z0-9_$]*)\s+)?from\s+['"]([^'"]+)['"]`)

// bindingPattern matches one entry of a named-import list, with optional
// `as` alias.
var bindingPattern = regexp.MustCompile(
	`^([A-Za-z_$][A-Za-z0-9_$]*)(?:\s+as\s+([A-Za-z_$][A-Za-z0-9_$]*))?$`)

// ImportStatements extracts every recognizable import statement from the
// file text, in source order.
func ImportStatements(text string) []ImportStatement {
	matches := importPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	stmts := make([]ImportStatement, 0, len(matches))
	for _, m := range matches {
		stmt := ImportStatement{Offset: m[0], Source: group(text, m, 4)}
		stmt.DefaultImport = group(text, m, 1)
		if stmt.DefaultImport == "" {
			stmt.DefaultImport = group(text, m, 3)
		}
		stmt.NamedImports = group(text, m, 2)
		stmts = append(stmts, stmt)
	}
	return stmts
}

// NamedBindings parses the inside of a named-import clause into bindings,
// dropping anything whose original name does not start with an uppercase
// letter (hooks, utilities) and anything that does not look like a plain
// `Name` or `Name as Alias` entry.
func NamedBindings(namedImports string) []NamedBinding {
	if strings.TrimSpace(namedImports) == "" {
		return nil
	}
	var bindings []NamedBinding
	for _, part := range strings.Split(namedImports, ",") {
		part = strings.TrimSpace(part)
		// Type-only entries are import metadata, not component bindings.
		part = strings.TrimPrefix(part, "type ")
		m := bindingPattern.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		original := m[1]
		if !startsUpper(original) {
			continue
		}
		local := m[2]
		if local == "" {
			local = original
		}
		bindings = append(bindings, NamedBinding{Original: original, Local: local})
	}
	return bindings
}

// ResolveTrackedImports builds the per-file local→original map of tracked
// component bindings. Only named imports whose source passes the tracked
// set's source filter and whose original name is in the allowlist are
// retained. A name imported twice yields one entry (last wins).
func ResolveTrackedImports(text string, set *TrackedSet) ImportMap {
	imports := make(ImportMap)
	for _, stmt := range ImportStatements(text) {
		if !set.TracksSource(stmt.Source) {
			continue
		}
		for _, b := range NamedBindings(stmt.NamedImports) {
			if set.Tracks(b.Original) {
				imports[b.Local] = b.Original
			}
		}
	}
	return imports
}

func group(text string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}

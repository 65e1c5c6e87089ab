package scanner

import (
	"fmt"
	"sort"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/lexer"
	"github.com/gnana997/propscope/pkg/util"
)

// FileScanner turns one source file into an aggregate.FileScan using the
// lexical core. It holds no per-file state and is safe for concurrent
// use from the worker pool.
type FileScanner struct {
	set   *lexer.TrackedSet
	cache *util.FileCache
}

// NewFileScanner creates a file scanner over the tracked set. The cache
// is shared with the rest of the pipeline and with watch mode.
func NewFileScanner(set *lexer.TrackedSet, cache *util.FileCache) *FileScanner {
	return &FileScanner{set: set, cache: cache}
}

// ScanFile reads and scans one file. The returned FileScan is ready to
// fold; a read failure is the only error and means the file is skipped.
func (s *FileScanner) ScanFile(path, codebase string) (*aggregate.FileScan, error) {
	text, err := s.cache.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return s.ScanText(path, codebase, text), nil
}

// ScanText scans already-materialized file text. Deterministic: the same
// text and tracked set always produce the same FileScan.
func (s *FileScanner) ScanText(path, codebase, text string) *aggregate.FileScan {
	imports := lexer.ResolveTrackedImports(text, s.set)
	scan := &aggregate.FileScan{
		File:           path,
		Codebase:       codebase,
		Imports:        sortedComponents(imports),
		StyledWrappers: s.set.StyledWrappers(text),
	}

	instances := lexer.ScanTrackedInstances(text, imports)
	if len(instances) == 0 {
		return scan
	}

	ix := lexer.NewLineIndex(text)
	scan.Instances = make([]aggregate.InstanceRecord, 0, len(instances))
	for _, inst := range instances {
		scan.Instances = append(scan.Instances, aggregate.InstanceRecord{
			Component: inst.Component,
			Props:     inst.Props,
			Line:      ix.Line(inst.Offset),
			Chars:     inst.End - inst.Offset + 1,
			Lines:     ix.Lines(inst.Offset, inst.End),
		})
	}
	return scan
}

// sortedComponents flattens an import map to its distinct original names
// in stable order.
func sortedComponents(imports lexer.ImportMap) []string {
	set := imports.Components()
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

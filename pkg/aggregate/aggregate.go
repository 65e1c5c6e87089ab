// Package aggregate folds per-file scan records into cross-file,
// cross-codebase usage reports.
package aggregate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gnana997/propscope/pkg/defaults"
	"github.com/gnana997/propscope/pkg/lexer"
)

// InstanceRecord is one tracked-component instance ready to fold: the
// lexer's structured output plus the source location attached by the
// scan pipeline.
type InstanceRecord struct {
	Component string       `json:"component"`
	Props     []lexer.Prop `json:"props"`
	Line      int          `json:"line"`
	// Chars and Lines are the opening tag's footprint in the source.
	Chars int `json:"chars"`
	Lines int `json:"lines"`
}

// FileScan is one file's complete scan output.
type FileScan struct {
	File     string `json:"file"`
	Codebase string `json:"codebase"`
	// Imports lists the original names of every tracked component the
	// file imports, used or not.
	Imports        []string         `json:"imports"`
	Instances      []InstanceRecord `json:"instances"`
	StyledWrappers map[string]int   `json:"styled_wrappers,omitempty"`
}

// Reference locates one instance of a component.
type Reference struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Codebase string `json:"codebase"`
}

// PropUsage accumulates one prop's value distribution.
type PropUsage struct {
	// Values maps normalized value → count.
	Values      map[string]int `json:"values"`
	TotalUsages int            `json:"total_usages"`

	// Default fields are populated by Finalize, never during folding.
	DefaultValue      string              `json:"default_value,omitempty"`
	DefaultConfidence defaults.Confidence `json:"default_confidence,omitempty"`
	DefaultReason     string              `json:"default_reason,omitempty"`
	DefaultUsages     int                 `json:"default_usages,omitempty"`
}

// ComponentUsage is the per-component aggregate accumulated across all
// files and codebases.
type ComponentUsage struct {
	Component         string                `json:"component"`
	TotalImports      int                   `json:"total_imports"`
	TotalInstances    int                   `json:"total_instances"`
	Props             map[string]*PropUsage `json:"props"`
	CodebaseImports   map[string]int        `json:"codebase_imports"`
	CodebaseInstances map[string]int        `json:"codebase_instances"`
	References        []Reference           `json:"references"`
	StyledWrappers    int                   `json:"styled_wrappers,omitempty"`
	FootprintChars    int                   `json:"footprint_chars"`
	FootprintLines    int                   `json:"footprint_lines"`
	// TotalDefaultUsages counts explicitly written values judged
	// redundant, summed over props after Finalize.
	TotalDefaultUsages int `json:"total_default_usages"`
}

// Aggregator merges file scans into component usage reports. Folds are
// serialized internally, so a worker pool may feed one Aggregator
// directly. Finalize runs default detection exactly once over the
// completed counts; folding after Finalize is an error.
type Aggregator struct {
	mu         sync.Mutex
	components map[string]*ComponentUsage
	detector   defaults.Detector
	finalized  bool
}

// New creates an aggregator. The detector may be nil to skip default
// detection entirely.
func New(detector defaults.Detector) *Aggregator {
	return &Aggregator{
		components: make(map[string]*ComponentUsage),
		detector:   detector,
	}
}

// Fold merges one file's scan into the aggregate.
func (a *Aggregator) Fold(scan *FileScan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return fmt.Errorf("aggregate: fold after finalize")
	}

	for _, original := range scan.Imports {
		usage := a.component(original)
		usage.TotalImports++
		usage.CodebaseImports[scan.Codebase]++
	}

	for _, inst := range scan.Instances {
		usage := a.component(inst.Component)
		usage.TotalInstances++
		usage.CodebaseInstances[scan.Codebase]++
		usage.References = append(usage.References, Reference{
			File:     scan.File,
			Line:     inst.Line,
			Codebase: scan.Codebase,
		})
		usage.FootprintChars += inst.Chars
		usage.FootprintLines += inst.Lines

		for _, prop := range inst.Props {
			pu := usage.Props[prop.Name]
			if pu == nil {
				pu = &PropUsage{Values: make(map[string]int)}
				usage.Props[prop.Name] = pu
			}
			pu.Values[lexer.Normalize(lexer.Classify(prop.Value))]++
			pu.TotalUsages++
		}
	}

	for component, n := range scan.StyledWrappers {
		a.component(component).StyledWrappers += n
	}
	return nil
}

// Finalize runs default detection over the completed distributions. It
// must be called once, after every file of every codebase has been
// folded; the detector needs whole-population statistics.
func (a *Aggregator) Finalize() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return fmt.Errorf("aggregate: finalize called twice")
	}
	a.finalized = true
	if a.detector == nil {
		return nil
	}

	for _, usage := range a.components {
		for name, pu := range usage.Props {
			det := a.detector.Detect(usage.Component, name, pu.Values, pu.TotalUsages)
			if det == nil {
				continue
			}
			pu.DefaultValue = det.Value
			pu.DefaultConfidence = det.Confidence
			pu.DefaultReason = det.Reason
			pu.DefaultUsages = det.Count
			usage.TotalDefaultUsages += det.Count
		}
	}
	return nil
}

// Reports returns the per-component aggregates sorted by component name.
func (a *Aggregator) Reports() []*ComponentUsage {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*ComponentUsage, 0, len(a.components))
	for _, usage := range a.components {
		out = append(out, usage)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Component < out[j].Component
	})
	return out
}

// component returns the usage record for a component, creating it on
// first reference. Callers must hold the mutex.
func (a *Aggregator) component(name string) *ComponentUsage {
	usage := a.components[name]
	if usage == nil {
		usage = &ComponentUsage{
			Component:         name,
			Props:             make(map[string]*PropUsage),
			CodebaseImports:   make(map[string]int),
			CodebaseInstances: make(map[string]int),
		}
		a.components[name] = usage
	}
	return usage
}

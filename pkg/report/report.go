// Package report renders finished usage aggregates as JSON, CSV,
// Markdown, or colored terminal tables.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/scanner"
)

// Format represents an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a string to Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "markdown", "md":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Metadata describes one report run.
type Metadata struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Library     string             `json:"library"`
	Codebases   []scanner.Codebase `json:"codebases"`
	Stats       scanner.ScanStats  `json:"stats"`
}

// Document is a complete, renderable usage report.
type Document struct {
	Metadata   Metadata                    `json:"metadata"`
	Components []*aggregate.ComponentUsage `json:"components"`
}

// NewDocument assembles a document from a finished scan.
func NewDocument(library string, codebases []scanner.Codebase, result *scanner.ScanResult) *Document {
	return &Document{
		Metadata: Metadata{
			GeneratedAt: time.Now().UTC(),
			Library:     library,
			Codebases:   codebases,
			Stats:       result.Stats,
		},
		Components: result.Reports,
	}
}

// LoadDocument reads a previously rendered JSON document, e.g. for the
// MCP server.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &doc, nil
}

// Component returns the usage record for a component, or nil.
func (d *Document) Component(name string) *aggregate.ComponentUsage {
	for _, c := range d.Components {
		if c.Component == name {
			return c
		}
	}
	return nil
}

// RenderJSON writes the document as indented JSON.
func (d *Document) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// RenderCSV writes the component summary sheet followed by the
// prop-value detail sheet, separated by a blank record.
func (d *Document) RenderCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"component", "total_imports", "total_instances", "styled_wrappers",
		"default_usages", "footprint_chars", "footprint_lines",
	}); err != nil {
		return err
	}
	for _, c := range d.Components {
		if err := cw.Write([]string{
			c.Component,
			strconv.Itoa(c.TotalImports),
			strconv.Itoa(c.TotalInstances),
			strconv.Itoa(c.StyledWrappers),
			strconv.Itoa(c.TotalDefaultUsages),
			strconv.Itoa(c.FootprintChars),
			strconv.Itoa(c.FootprintLines),
		}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"component", "prop", "value", "count"}); err != nil {
		return err
	}
	for _, c := range d.Components {
		for _, prop := range sortedPropNames(c.Props) {
			pu := c.Props[prop]
			for _, value := range sortedValueKeys(pu.Values) {
				if err := cw.Write([]string{
					c.Component, prop, value, strconv.Itoa(pu.Values[value]),
				}); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderMarkdown writes per-component sections with prop tables.
func (d *Document) RenderMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Component usage: %s\n\n", d.Metadata.Library)
	fmt.Fprintf(w, "Generated %s over %d codebase(s), %d file(s) scanned.\n\n",
		d.Metadata.GeneratedAt.Format(time.RFC3339),
		len(d.Metadata.Codebases),
		d.Metadata.Stats.FilesScanned)

	writeMarkdownTable(w, []string{"Component", "Imports", "Instances", "Styled", "Redundant defaults"},
		summaryRows(d.Components))

	for _, c := range d.Components {
		if len(c.Props) == 0 {
			continue
		}
		fmt.Fprintf(w, "## %s\n\n", c.Component)
		var rows [][]string
		for _, prop := range sortedPropNames(c.Props) {
			pu := c.Props[prop]
			for _, value := range sortedValueKeys(pu.Values) {
				redundant := ""
				if value == pu.DefaultValue {
					redundant = fmt.Sprintf("default (%s)", pu.DefaultConfidence)
				}
				rows = append(rows, []string{
					prop, value, strconv.Itoa(pu.Values[value]), redundant,
				})
			}
		}
		writeMarkdownTable(w, []string{"Prop", "Value", "Count", "Note"}, rows)
	}
	return nil
}

func writeMarkdownTable(w io.Writer, headers []string, rows [][]string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))
	for _, row := range rows {
		fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
	}
	fmt.Fprintln(w)
}

func summaryRows(components []*aggregate.ComponentUsage) [][]string {
	rows := make([][]string, 0, len(components))
	for _, c := range components {
		rows = append(rows, []string{
			c.Component,
			strconv.Itoa(c.TotalImports),
			strconv.Itoa(c.TotalInstances),
			strconv.Itoa(c.StyledWrappers),
			strconv.Itoa(c.TotalDefaultUsages),
		})
	}
	return rows
}

func sortedPropNames(props map[string]*aggregate.PropUsage) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedValueKeys orders values by descending count, then lexically, so
// rendered reports are stable across runs.
func sortedValueKeys(values map[string]int) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if values[keys[i]] != values[keys[j]] {
			return values[keys[i]] > values[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

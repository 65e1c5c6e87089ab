package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/defaults"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func sortedProps(props map[string]*aggregate.PropUsage) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func stringArg(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}

func intArg(req mcp.CallToolRequest, key string, def int) int {
	if v, ok := req.GetArguments()[key].(float64); ok && v > 0 {
		return int(v)
	}
	return def
}

type componentSummary struct {
	Name           string `json:"name"`
	TotalImports   int    `json:"total_imports"`
	TotalInstances int    `json:"total_instances"`
	StyledWrappers int    `json:"styled_wrappers"`
	DefaultUsages  int    `json:"default_usages"`
}

func (s *Server) handleListComponents(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries := make([]componentSummary, 0, len(s.doc.Components))
	for _, c := range s.doc.Components {
		summaries = append(summaries, componentSummary{
			Name:           c.Component,
			TotalImports:   c.TotalImports,
			TotalInstances: c.TotalInstances,
			StyledWrappers: c.StyledWrappers,
			DefaultUsages:  c.TotalDefaultUsages,
		})
	}
	return jsonResult(summaries)
}

func (s *Server) handleGetComponentUsage(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req, "name")
	if name == "" {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	c := s.doc.Component(name)
	if c == nil {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", name)), nil
	}
	return jsonResult(c)
}

func (s *Server) handleGetPropValues(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req, "component")
	if name == "" {
		return mcp.NewToolResultError("missing required parameter: component"), nil
	}
	c := s.doc.Component(name)
	if c == nil {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", name)), nil
	}

	if prop := stringArg(req, "prop"); prop != "" {
		pu, ok := c.Props[prop]
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("prop not found on %s: %s", name, prop)), nil
		}
		return jsonResult(map[string]*aggregate.PropUsage{prop: pu})
	}
	return jsonResult(c.Props)
}

type defaultFinding struct {
	Component  string              `json:"component"`
	Prop       string              `json:"prop"`
	Value      string              `json:"value"`
	Confidence defaults.Confidence `json:"confidence"`
	Reason     string              `json:"reason"`
	Usages     int                 `json:"usages"`
	Total      int                 `json:"total"`
}

func (s *Server) handleGetDefaultFindings(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := stringArg(req, "component")

	var findings []defaultFinding
	for _, c := range s.doc.Components {
		if filter != "" && c.Component != filter {
			continue
		}
		for _, prop := range sortedProps(c.Props) {
			pu := c.Props[prop]
			if pu.DefaultValue == "" {
				continue
			}
			findings = append(findings, defaultFinding{
				Component:  c.Component,
				Prop:       prop,
				Value:      pu.DefaultValue,
				Confidence: pu.DefaultConfidence,
				Reason:     pu.DefaultReason,
				Usages:     pu.DefaultUsages,
				Total:      pu.TotalUsages,
			})
		}
	}
	if filter != "" && s.doc.Component(filter) == nil {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", filter)), nil
	}
	if len(findings) == 0 {
		return mcp.NewToolResultText("no default findings"), nil
	}
	return jsonResult(findings)
}

func (s *Server) handleSearchReferences(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req, "component")
	if name == "" {
		return mcp.NewToolResultError("missing required parameter: component"), nil
	}
	c := s.doc.Component(name)
	if c == nil {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", name)), nil
	}

	limit := intArg(req, "limit", 100)
	refs := c.References
	if len(refs) > limit {
		refs = refs[:limit]
	}
	if len(refs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no references found for %s", name)), nil
	}
	return jsonResult(refs)
}

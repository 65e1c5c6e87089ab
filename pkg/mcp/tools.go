package mcp

import "github.com/mark3labs/mcp-go/mcp"

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription(
			"List every tracked component in the report with its import count, "+
				"instance count, styled-wrapper count, and redundant default usages.",
		),
	)
}

func getComponentUsageTool() mcp.Tool {
	return mcp.NewTool("get_component_usage",
		mcp.WithDescription(
			"Full usage record for one component: counts per codebase, prop value "+
				"distributions, references, footprint, and default findings.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. 'Button'."),
		),
	)
}

func getPropValuesTool() mcp.Tool {
	return mcp.NewTool("get_prop_values",
		mcp.WithDescription(
			"Value distribution for a component's props. With 'prop' set, returns "+
				"just that prop; otherwise all props.",
		),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name."),
		),
		mcp.WithString("prop",
			mcp.Description("Optional prop name to narrow the result."),
		),
	)
}

func getDefaultFindingsTool() mcp.Tool {
	return mcp.NewTool("get_default_findings",
		mcp.WithDescription(
			"Props whose most common written value matches a known or inferred "+
				"component default, with confidence and usage counts. Optionally "+
				"filtered to one component.",
		),
		mcp.WithString("component",
			mcp.Description("Optional component name to filter findings."),
		),
	)
}

func searchReferencesTool() mcp.Tool {
	return mcp.NewTool("search_references",
		mcp.WithDescription(
			"Source locations (file, line, codebase) where a component is used.",
		),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum references to return (default 100)."),
		),
	)
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderText writes the summary as an aligned terminal table, with the
// title bolded when colored output is enabled.
func (d *Document) RenderText(w io.Writer, colored bool) error {
	title := fmt.Sprintf("Component usage: %s", d.Metadata.Library)
	if colored {
		color.New(color.Bold).Fprintln(w, title)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)

	table.Header([]string{"Component", "Imports", "Instances", "Styled", "Redundant defaults"})
	for _, row := range summaryRows(d.Components) {
		table.Append(row)
	}
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d component(s), %d file(s) scanned, %d failed\n",
		len(d.Components), d.Metadata.Stats.FilesScanned, d.Metadata.Stats.FilesFailed)
	return nil
}

// Render dispatches on format.
func (d *Document) Render(w io.Writer, format Format, colored bool) error {
	switch format {
	case FormatJSON:
		return d.RenderJSON(w)
	case FormatCSV:
		return d.RenderCSV(w)
	case FormatMarkdown:
		return d.RenderMarkdown(w)
	default:
		return d.RenderText(w, colored)
	}
}

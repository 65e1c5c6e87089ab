package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gnana997/propscope/pkg/report"
)

// runReport re-renders a saved JSON report in another format, so a
// single scan can feed a terminal view, a spreadsheet, and docs.
func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	in := fs.String("in", "propscope-report.json", "path to a saved JSON report")
	format := fs.String("format", "text", "output format: text, json, csv, markdown")
	out := fs.String("out", "", "write output to file instead of stdout")
	noColor := fs.Bool("no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := report.LoadDocument(*in)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	colored := !*noColor
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
		colored = false
	}

	return doc.Render(w, report.ParseFormat(*format), colored)
}

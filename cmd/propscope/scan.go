package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gnana997/propscope/pkg/defaults"
	"github.com/gnana997/propscope/pkg/report"
	"github.com/gnana997/propscope/pkg/scanner"
)

func runScan(args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	configPath := fs.String("config", "", "path to tracked configuration (default .propscope/config.yaml)")
	format := fs.String("format", "text", "output format: text, json, csv, markdown")
	out := fs.String("out", "", "write output to file instead of stdout")
	workers := fs.Int("workers", 0, "worker pool size (0 = auto)")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "disable colored output")
	noProgress := fs.Bool("no-progress", false, "disable the progress bar")

	var codebases codebaseFlags
	fs.Var(&codebases, "codebase", "codebase to scan as name=path (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Positional roots are shorthand for --codebase path.
	for _, root := range fs.Args() {
		if err := codebases.Set(root); err != nil {
			return err
		}
	}
	if len(codebases) == 0 {
		if err := codebases.Set("."); err != nil {
			return err
		}
	}

	cfg, err := loadTracked(*configPath)
	if err != nil {
		return err
	}

	logger := newLogger(*logLevel)
	s := scanner.NewScanner(cfg.Set(), defaults.NewKnowledgeDetector(), logger)
	defer s.Close()

	scanCfg := scanner.DefaultScanConfig()
	scanCfg.Workers = *workers
	finishBar := func() {}
	if !*noProgress {
		bar := newScanSpinner("scanning")
		scanCfg.OnFile = func(string) { bar.Add(1) }
		finishBar = func() {
			bar.Finish()
			bar.Clear()
		}
	}

	result, err := s.Run(codebases, scanCfg)
	finishBar()
	if err != nil {
		return err
	}

	doc := report.NewDocument(cfg.Library, codebases, result)

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

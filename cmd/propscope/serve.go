package main

import (
	"flag"
	"fmt"

	mcpserver "github.com/gnana997/propscope/pkg/mcp"
	"github.com/gnana997/propscope/pkg/mcplog"
	"github.com/gnana997/propscope/pkg/report"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	reportPath := fs.String("report", "propscope-report.json", "path to a saved JSON report")
	logFile := fs.String("log-file", "", "append JSONL tool-call log to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, err := report.LoadDocument(*reportPath)
	if err != nil {
		return err
	}

	logger, err := mcplog.NewLogger(*logFile)
	if err != nil {
		return fmt.Errorf("open tool-call log: %w", err)
	}
	if logger != nil {
		defer logger.Close()
	}

	srv := mcpserver.NewServer(doc, logger)
	return srv.ServeStdio()
}

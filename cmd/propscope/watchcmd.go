package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gnana997/propscope/pkg/defaults"
	"github.com/gnana997/propscope/pkg/report"
	"github.com/gnana997/propscope/pkg/scanner"
	"github.com/gnana997/propscope/pkg/util"
	"github.com/gnana997/propscope/pkg/watch"
)

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "path to tracked configuration (default .propscope/config.yaml)")
	root := fs.String("root", ".", "codebase root to watch")
	name := fs.String("name", "", "codebase name (default: root directory name)")
	debounceMs := fs.Int("debounce-ms", 200, "debounce window for file events")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadTracked(*configPath)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(*root)
	if err != nil {
		return err
	}
	codebase := scanner.Codebase{Name: *name, Root: absRoot}
	if codebase.Name == "" {
		codebase.Name = filepath.Base(absRoot)
	}

	logger := newLogger(*logLevel)
	cache := util.NewFileCache(logger)
	defer cache.Close()

	set := cfg.Set()
	options := watch.DefaultOptions()
	options.DebounceMs = *debounceMs

	onUpdate := func(result *scanner.ScanResult) {
		doc := report.NewDocument(cfg.Library, []scanner.Codebase{codebase}, result)
		fmt.Println()
		if err := doc.RenderText(os.Stdout, !*noColor); err != nil {
			logger.Error("Failed to render report", "error", err)
		}
	}

	w, err := watch.NewWatcher(
		scanner.NewFileScanner(set, cache),
		defaults.NewKnowledgeDetector(),
		cache,
		codebase,
		scanner.DefaultScanConfig(),
		options,
		onUpdate,
		logger,
	)
	if err != nil {
		return err
	}

	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", absRoot)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

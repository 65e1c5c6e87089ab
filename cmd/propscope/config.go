package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnana997/propscope/pkg/scanner"
	"github.com/gnana997/propscope/pkg/tracked"
	"github.com/gnana997/propscope/pkg/util"
)

// loadTracked resolves tracked configuration with the fallback chain:
//  1. Explicit --config flag value
//  2. .propscope/config.yaml in the working directory
//  3. Built-in default component set
//
// tracked.Load treats a missing file as the default set, so only
// unreadable or invalid files fail here.
func loadTracked(flagValue string) (*tracked.Config, error) {
	cfg, err := tracked.Load(flagValue)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	cfg := util.DefaultLoggerConfig()
	if level != "" {
		cfg.Level = util.LogLevel(level)
	}
	return util.NewLogger(cfg)
}

// codebaseFlags collects repeated --codebase name=path values.
type codebaseFlags []scanner.Codebase

func (f *codebaseFlags) String() string {
	return fmt.Sprintf("%d codebase(s)", len(*f))
}

func (f *codebaseFlags) Set(value string) error {
	name, root := splitCodebase(value)
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("codebase root %s: %w", root, err)
	}
	*f = append(*f, scanner.Codebase{Name: name, Root: root})
	return nil
}

// splitCodebase parses "name=path"; a bare path names the codebase
// after itself.
func splitCodebase(value string) (name, root string) {
	for i := 0; i < len(value); i++ {
		if value[i] == '=' {
			return value[:i], value[i+1:]
		}
	}
	return value, value
}

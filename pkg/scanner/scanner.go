package scanner

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/defaults"
	"github.com/gnana997/propscope/pkg/lexer"
	"github.com/gnana997/propscope/pkg/util"
)

// Scanner orchestrates the scan pipeline over one or more codebases.
type Scanner struct {
	set      *lexer.TrackedSet
	cache    *util.FileCache
	detector defaults.Detector
	log      *slog.Logger
}

// NewScanner creates a scanner. The tracked set must be compiled from
// configuration before calling (the derived name patterns travel with
// it). A nil detector disables default detection; a nil logger falls
// back to slog.Default().
func NewScanner(set *lexer.TrackedSet, detector defaults.Detector, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		set:      set,
		cache:    util.NewFileCache(logger),
		detector: detector,
		log:      logger,
	}
}

// FileScanner returns the per-file scanner sharing this pipeline's file
// cache. Watch mode uses it to re-scan individual files.
func (s *Scanner) FileScanner() *FileScanner {
	return NewFileScanner(s.set, s.cache)
}

// Close releases the file cache.
func (s *Scanner) Close() error {
	return s.cache.Close()
}

// Run scans every codebase and returns the finalized usage reports.
func (s *Scanner) Run(codebases []Codebase, cfg ScanConfig) (*ScanResult, error) {
	if len(codebases) == 0 {
		return nil, fmt.Errorf("scanner: no codebases configured")
	}

	totalStart := time.Now()
	stats := ScanStats{Codebases: len(codebases)}
	agg := aggregate.New(s.detector)

	for _, cb := range codebases {
		discoveryStart := time.Now()
		files, err := DiscoverFiles(cb.Root, cfg)
		if err != nil {
			return nil, fmt.Errorf("discovery failed for %s: %w", cb.Name, err)
		}
		stats.FilesDiscovered += len(files)
		stats.DiscoveryTimeMs += time.Since(discoveryStart).Milliseconds()

		s.log.Info("discovery complete",
			"codebase", cb.Name, "files", len(files))

		scanStart := time.Now()
		scans, failed := scanFiles(files, cb.Name, s.FileScanner(), cfg, s.log)
		stats.FilesScanned += len(scans)
		stats.FilesFailed += failed
		stats.ScanTimeMs += time.Since(scanStart).Milliseconds()

		// Deterministic fold order regardless of worker scheduling.
		sort.Slice(scans, func(i, j int) bool { return scans[i].File < scans[j].File })
		for _, scan := range scans {
			if err := agg.Fold(scan); err != nil {
				return nil, err
			}
		}

		s.log.Info("scan complete",
			"codebase", cb.Name, "scanned", len(scans), "failed", failed)
	}

	// Default detection needs the whole population, so it runs exactly
	// once, after every codebase has been folded.
	if err := agg.Finalize(); err != nil {
		return nil, err
	}

	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
	s.log.Info("pipeline complete",
		"components", len(agg.Reports()),
		"files", stats.FilesScanned,
		"ms", stats.TotalTimeMs)

	return &ScanResult{Reports: agg.Reports(), Stats: stats}, nil
}

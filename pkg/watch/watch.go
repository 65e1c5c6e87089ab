// Package watch keeps a usage report live while sources change: an
// fsnotify watcher debounces file events, re-scans only the changed
// files, and rebuilds the aggregate from cached per-file scans.
package watch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/defaults"
	"github.com/gnana997/propscope/pkg/scanner"
	"github.com/gnana997/propscope/pkg/util"
)

// Options configures the watcher.
type Options struct {
	// DebounceMs groups rapid events for the same file; only the last
	// event inside the window triggers a rescan.
	DebounceMs int
	// MaxCachedFiles bounds the per-file scan cache. Files evicted
	// under pressure drop out of the live report until they change
	// again.
	MaxCachedFiles int
}

// DefaultOptions returns the default watch configuration.
func DefaultOptions() Options {
	return Options{
		DebounceMs:     200,
		MaxCachedFiles: 4096,
	}
}

// Watcher re-scans changed files and publishes rebuilt reports through
// the OnUpdate callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    *scanner.FileScanner
	detector defaults.Detector
	cache    *util.FileCache
	codebase scanner.Codebase
	cfg      scanner.ScanConfig
	options  Options
	onUpdate func(*scanner.ScanResult)
	logger   *slog.Logger

	scans *lru.Cache[string, *aggregate.FileScan]

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher for one codebase. The file cache is
// shared with the scan pipeline so rescans see fresh contents.
func NewWatcher(
	files *scanner.FileScanner,
	detector defaults.Detector,
	cache *util.FileCache,
	codebase scanner.Codebase,
	cfg scanner.ScanConfig,
	options Options,
	onUpdate func(*scanner.ScanResult),
	logger *slog.Logger,
) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if options.MaxCachedFiles == 0 {
		options.MaxCachedFiles = 4096
	}

	scans, err := lru.NewWithEvict(options.MaxCachedFiles, func(key string, _ *aggregate.FileScan) {
		logger.Debug("Evicting cached scan", "file", key)
	})
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("create scan cache: %w", err)
	}

	return &Watcher{
		watcher:        fsw,
		files:          files,
		detector:       detector,
		cache:          cache,
		codebase:       codebase,
		cfg:            cfg,
		options:        options,
		onUpdate:       onUpdate,
		logger:         logger,
		scans:          scans,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start performs an initial full scan, publishes the first report, and
// begins watching the codebase root in a background goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	if err := w.initialScan(); err != nil {
		return err
	}

	if err := w.watcher.Add(w.codebase.Root); err != nil {
		return fmt.Errorf("watch %s: %w", w.codebase.Root, err)
	}

	err := filepath.Walk(w.codebase.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if w.shouldIgnore(path) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("Failed to watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setup watches: %w", err)
	}

	w.logger.Info("Watcher started",
		"codebase", w.codebase.Name,
		"root", w.codebase.Root,
		"files", w.scans.Len())

	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("Watcher stopped")
	return err
}

// initialScan walks the codebase once and seeds the scan cache.
func (w *Watcher) initialScan() error {
	files, err := scanner.DiscoverFiles(w.codebase.Root, w.cfg)
	if err != nil {
		return fmt.Errorf("discover %s: %w", w.codebase.Name, err)
	}
	for _, path := range files {
		scan, err := w.files.ScanFile(path, w.codebase.Name)
		if err != nil {
			w.logger.Warn("Failed to scan file", "file", path, "error", err)
			continue
		}
		w.scans.Add(path, scan)
	}
	w.publish()
	return nil
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.shouldIgnore(path) {
		return
	}
	if !isSourceFile(path) {
		return
	}
	if !w.cfg.Selects(w.codebase.Root, path) {
		return
	}

	w.logger.Debug("File event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		w.debounceRescan(path)

	case event.Op&fsnotify.Create == fsnotify.Create:
		w.debounceRescan(path)

	case event.Op&fsnotify.Remove == fsnotify.Remove:
		w.removeFile(path)

	case event.Op&fsnotify.Rename == fsnotify.Rename:
		w.removeFile(path)
	}
}

// debounceRescan schedules a rescan after the debounce window. Repeated
// events for the same file inside the window collapse into one rescan.
func (w *Watcher) debounceRescan(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}

	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.rescanFile(path)

			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

// rescanFile re-scans one file and rebuilds the published aggregate.
// Files the scan configuration excludes never reach the report, no
// matter how the rescan was triggered.
func (w *Watcher) rescanFile(path string) {
	if !w.cfg.Selects(w.codebase.Root, path) {
		return
	}

	w.logger.Debug("Rescanning file", "file", path)

	w.cache.Invalidate(path)

	scan, err := w.files.ScanFile(path, w.codebase.Name)
	if err != nil {
		w.logger.Warn("Failed to rescan file", "file", path, "error", err)
		w.scans.Remove(path)
		w.publish()
		return
	}

	w.scans.Add(path, scan)
	w.publish()
}

func (w *Watcher) removeFile(path string) {
	if _, ok := w.scans.Peek(path); !ok {
		return
	}
	w.logger.Debug("Removing file from report", "file", path)
	w.cache.Invalidate(path)
	w.scans.Remove(path)
	w.publish()
}

// publish folds every cached scan into a fresh aggregate and hands the
// finished result to the update callback. Aggregation is finalize-once,
// so watch mode rebuilds rather than mutating a finished aggregate.
func (w *Watcher) publish() {
	start := time.Now()

	keys := w.scans.Keys()
	sort.Strings(keys)

	agg := aggregate.New(w.detector)
	folded := 0
	for _, key := range keys {
		scan, ok := w.scans.Peek(key)
		if !ok {
			continue
		}
		if err := agg.Fold(scan); err != nil {
			w.logger.Error("Failed to fold scan", "file", key, "error", err)
			continue
		}
		folded++
	}
	if err := agg.Finalize(); err != nil {
		w.logger.Error("Failed to finalize aggregate", "error", err)
		return
	}

	elapsed := time.Since(start)
	result := &scanner.ScanResult{
		Reports: agg.Reports(),
		Stats: scanner.ScanStats{
			Codebases:       1,
			FilesDiscovered: folded,
			FilesScanned:    folded,
			ScanTimeMs:      elapsed.Milliseconds(),
			TotalTimeMs:     elapsed.Milliseconds(),
		},
	}

	w.logger.Debug("Report rebuilt",
		"files", folded,
		"components", len(result.Reports),
		"elapsed", elapsed)

	if w.onUpdate != nil {
		w.onUpdate(result)
	}
}

// Stats reports watcher state for diagnostics.
type Stats struct {
	CachedScans    int
	PendingRescans int
	IsRunning      bool
}

// GetStats returns current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.debounceMu.Lock()
	pending := len(w.debounceTimers)
	w.debounceMu.Unlock()

	w.mu.Lock()
	running := !w.stopped
	w.mu.Unlock()

	return Stats{
		CachedScans:    w.scans.Len(),
		PendingRescans: pending,
		IsRunning:      running,
	}
}

func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	switch base {
	case "node_modules", ".git", "dist", "build", ".next", "coverage", "out":
		return true
	}
	return false
}

func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx", ".ts", ".js":
		return true
	}
	return false
}

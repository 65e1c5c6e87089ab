package scanner

import (
	"log/slog"
	"sync"

	"github.com/gnana997/propscope/pkg/aggregate"
	"github.com/gnana997/propscope/pkg/util"
)

// scanFiles scans files from one codebase in parallel and returns the
// per-file results. Errors on individual files are logged and counted
// but don't stop the pipeline. The caller folds the results
// sequentially, so the aggregate sees a deterministic merge regardless
// of worker scheduling.
func scanFiles(
	files []string,
	codebase string,
	fileScanner *FileScanner,
	cfg ScanConfig,
	logger *slog.Logger,
) ([]*aggregate.FileScan, int) {
	if len(files) == 0 {
		return nil, 0
	}

	numWorkers := util.PoolSizeWithOverride(cfg.Workers)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	paths := make(chan string, numWorkers*2)
	type scanOrError struct {
		scan *aggregate.FileScan
		err  error
		file string
	}
	results := make(chan scanOrError, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				scan, err := fileScanner.ScanFile(path, codebase)
				results <- scanOrError{scan: scan, err: err, file: path}
			}
		}()
	}

	go func() {
		for _, f := range files {
			paths <- f
		}
		close(paths)
		wg.Wait()
		close(results)
	}()

	// Collect in completion order; the fold step sorts by file before
	// merging.
	scans := make([]*aggregate.FileScan, 0, len(files))
	failed := 0
	for r := range results {
		if cfg.OnFile != nil {
			cfg.OnFile(r.file)
		}
		if r.err != nil {
			logger.Warn("scan failed", "file", r.file, "error", r.err)
			failed++
			continue
		}
		scans = append(scans, r.scan)
	}
	return scans, failed
}

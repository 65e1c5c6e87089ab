package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles walks root applying include/exclude globs from cfg.
// Returns a sorted slice of absolute file paths for deterministic output.
// Walk errors on individual entries are skipped, not fatal: an unreadable
// subtree costs coverage, never the scan.
func DiscoverFiles(root string, cfg ScanConfig) ([]string, error) {
	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern: %s", pattern)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if matchesAny(cfg.Exclude, relPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(cfg.Include) > 0 && !matchesAny(cfg.Include, relPath) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Selects reports whether path, taken relative to root, survives the
// include/exclude globs. Watch mode gates file events through this so
// live reports apply the same rules as DiscoverFiles.
func (c ScanConfig) Selects(root, path string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}
	relPath = filepath.ToSlash(relPath)

	if matchesAny(c.Exclude, relPath) {
		return false
	}
	return len(c.Include) == 0 || matchesAny(c.Include, relPath)
}

func matchesAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
			return true
		}
	}
	return false
}

// Package scanner runs the propscope scan pipeline: file discovery,
// per-file lexical scanning, and aggregation into component usage
// reports.
package scanner

import "github.com/gnana997/propscope/pkg/aggregate"

// Codebase is one independent source tree analyzed and reported on
// separately and in aggregate.
type Codebase struct {
	Name string `yaml:"name" json:"name"`
	Root string `yaml:"root" json:"root"`
}

// ScanConfig configures the scan pipeline.
type ScanConfig struct {
	// Include glob patterns for file matching.
	Include []string
	// Exclude glob patterns.
	Exclude []string
	// Workers overrides the worker pool size (0 = auto-detect).
	Workers int
	// OnFile, when set, is called once per scanned file. Used by the
	// CLI to drive a progress bar.
	OnFile func(path string)
}

// DefaultScanConfig returns the default configuration: TSX/JSX sources,
// with build output and test/story files excluded.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Include: []string{
			"**/*.tsx",
			"**/*.jsx",
			"**/*.ts",
			"**/*.js",
		},
		Exclude: []string{
			"node_modules/**",
			".git/**",
			"dist/**",
			"build/**",
			".next/**",
			"coverage/**",
			"out/**",
			"**/*.test.*",
			"**/*.spec.*",
			"**/*.stories.*",
			"**/__tests__/**",
			"**/__mocks__/**",
			"**/__snapshots__/**",
		},
	}
}

// ScanStats records per-phase pipeline timing and counts.
type ScanStats struct {
	Codebases       int   `json:"codebases"`
	FilesDiscovered int   `json:"files_discovered"`
	FilesScanned    int   `json:"files_scanned"`
	FilesFailed     int   `json:"files_failed"`
	DiscoveryTimeMs int64 `json:"discovery_time_ms"`
	ScanTimeMs      int64 `json:"scan_time_ms"`
	TotalTimeMs     int64 `json:"total_time_ms"`
}

// ScanResult is the finished pipeline output.
type ScanResult struct {
	Reports []*aggregate.ComponentUsage `json:"reports"`
	Stats   ScanStats                   `json:"stats"`
}

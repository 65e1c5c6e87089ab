// FileCache provides read access to source files via memory-mapped
// regions, with a graceful fallback to os.ReadFile when mmap fails.
// Scans touch every tracked file at least once (twice in watch mode), so
// keeping files mapped avoids repeated reads while only the accessed
// pages occupy RAM.
package util

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// FileCacheStats tracks cache behavior for pipeline logging.
type FileCacheStats struct {
	FilesLoaded  int64
	CacheHits    int64
	CacheMisses  int64
	MmapFailures int64
}

// FileCache is safe for concurrent use: reads share an RWMutex, loads
// take it exclusively.
type FileCache struct {
	mu       sync.RWMutex
	mapped   map[string]mmap.MMap
	files    map[string]*os.File
	fallback map[string][]byte
	logger   *slog.Logger

	statsMu sync.Mutex
	stats   FileCacheStats
}

// NewFileCache creates an empty cache. A nil logger falls back to
// slog.Default().
func NewFileCache(logger *slog.Logger) *FileCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileCache{
		mapped:   make(map[string]mmap.MMap),
		files:    make(map[string]*os.File),
		fallback: make(map[string][]byte),
		logger:   logger,
	}
}

// ReadText returns the file's content as a string, mapping it on first
// access.
func (fc *FileCache) ReadText(path string) (string, error) {
	fc.mu.RLock()
	if data, ok := fc.mapped[path]; ok {
		fc.mu.RUnlock()
		fc.recordHit()
		return string(data), nil
	}
	if data, ok := fc.fallback[path]; ok {
		fc.mu.RUnlock()
		fc.recordHit()
		return string(data), nil
	}
	fc.mu.RUnlock()

	fc.mu.Lock()
	defer fc.mu.Unlock()

	// Another goroutine may have loaded it while we waited.
	if data, ok := fc.mapped[path]; ok {
		fc.recordHit()
		return string(data), nil
	}
	if data, ok := fc.fallback[path]; ok {
		fc.recordHit()
		return string(data), nil
	}

	fc.recordMiss()
	data, err := fc.load(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Invalidate drops a cached file so the next read reloads it. Used by
// the watch pipeline when a file changes on disk.
func (fc *FileCache) Invalidate(path string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if data, ok := fc.mapped[path]; ok {
		if err := data.Unmap(); err != nil {
			fc.logger.Warn("failed to unmap file", "path", path, "error", err)
		}
		delete(fc.mapped, path)
	}
	if f, ok := fc.files[path]; ok {
		_ = f.Close()
		delete(fc.files, path)
	}
	delete(fc.fallback, path)
}

// Size returns the number of cached files.
func (fc *FileCache) Size() int {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return len(fc.mapped) + len(fc.fallback)
}

// Stats returns a snapshot of cache metrics.
func (fc *FileCache) Stats() FileCacheStats {
	fc.statsMu.Lock()
	defer fc.statsMu.Unlock()
	return fc.stats
}

// Close unmaps every file and releases descriptors.
func (fc *FileCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var errs []error
	for path, data := range fc.mapped {
		if err := data.Unmap(); err != nil {
			errs = append(errs, fmt.Errorf("unmap %q: %w", path, err))
		}
	}
	for path, f := range fc.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %q: %w", path, err))
		}
	}
	fc.mapped = make(map[string]mmap.MMap)
	fc.files = make(map[string]*os.File)
	fc.fallback = make(map[string][]byte)

	if len(errs) > 0 {
		return fmt.Errorf("filecache close: %v", errs)
	}
	return nil
}

// load maps the file, falling back to a plain read. Callers must hold
// the write lock.
func (fc *FileCache) load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	fc.recordLoad()

	// Zero-byte files cannot be mapped.
	if stat.Size() == 0 {
		f.Close()
		fc.fallback[path] = nil
		return nil, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		fc.logger.Warn("mmap failed, using fallback", "file", path, "error", err)
		fc.recordMmapFailure()
		f.Close()
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %q after mmap failure (%v): %w", path, err, readErr)
		}
		fc.fallback[path] = raw
		return raw, nil
	}

	fc.mapped[path] = data
	fc.files[path] = f
	return data, nil
}

func (fc *FileCache) recordHit() {
	fc.statsMu.Lock()
	fc.stats.CacheHits++
	fc.statsMu.Unlock()
}

func (fc *FileCache) recordMiss() {
	fc.statsMu.Lock()
	fc.stats.CacheMisses++
	fc.statsMu.Unlock()
}

func (fc *FileCache) recordLoad() {
	fc.statsMu.Lock()
	fc.stats.FilesLoaded++
	fc.statsMu.Unlock()
}

func (fc *FileCache) recordMmapFailure() {
	fc.statsMu.Lock()
	fc.stats.MmapFailures++
	fc.statsMu.Unlock()
}

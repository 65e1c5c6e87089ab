package util

import "runtime"

// PoolSize returns the worker count for CPU-bound parallel file
// processing: 2× cores, clamped to [4, 32]. The minimum keeps weak
// machines from serializing the pipeline; the maximum bounds memory on
// high-core hosts.
func PoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// PoolSizeWithOverride returns override when positive, otherwise
// PoolSize(). The override exists for tests and tuning.
func PoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return PoolSize()
}

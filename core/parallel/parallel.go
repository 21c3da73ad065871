// Package parallel provides CPU-bound work distribution helpers for the
// evaluation harness. Repetitions and folds are independent, so they
// split cleanly across workers; result slots are written by index, so
// completion order never matters.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items across workers sized to the CPU count and
// runs fn on each half-open range [start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or
// below threshold, in parallel otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeIndexed runs fn once per item index. Each index gets its
// own call so callers can derive per-index state, e.g. an RNG seeded
// from the run seed and the index, keeping parallel runs reproducible.
func ParallelizeIndexed(items int, fn func(i int)) {
	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

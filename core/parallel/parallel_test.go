package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversAllItems(t *testing.T) {
	const items = 1000
	var hits [items]int32

	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("item %d handled %d times", i, h)
		}
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	if called {
		t.Error("fn must not run for zero items")
	}
}

func TestParallelizeWithThreshold_Sequential(t *testing.T) {
	var calls int
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("expected single range [0, 10), got [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected one sequential call, got %d", calls)
	}
}

func TestParallelizeIndexed_EachIndexOnce(t *testing.T) {
	const items = 137
	var hits [items]int32

	ParallelizeIndexed(items, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d handled %d times", i, h)
		}
	}
}

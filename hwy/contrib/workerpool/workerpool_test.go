// Copyright 2025 The go-vkern Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 1001} {
		results := make([]int, n)
		var calls atomic.Int32
		pool.ParallelFor(n, 1, func(start, end int) {
			calls.Add(1)
			for i := start; i < end; i++ {
				results[i] += i * 2
			}
		})

		for i := range n {
			if results[i] != i*2 {
				t.Fatalf("n=%d: results[%d] = %d, want %d", n, i, results[i], i*2)
			}
		}
		if got := int(calls.Load()); got > 4 {
			t.Errorf("n=%d: fn called %d times, want at most 4", n, got)
		}
	}
}

func TestParallelForGrain(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var mu sync.Mutex
	var ranges [][2]int
	pool.ParallelFor(100, 40, func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
	})

	// 100/40 = 2 workers at most.
	if len(ranges) != 2 {
		t.Fatalf("got %d ranges, want 2: %v", len(ranges), ranges)
	}
	covered := 0
	for _, r := range ranges {
		covered += r[1] - r[0]
	}
	if covered != 100 {
		t.Errorf("ranges cover %d indices, want 100", covered)
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var calls int
	pool.ParallelFor(10, 64, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	pool.ParallelFor(0, 1, func(start, end int) {
		t.Error("fn should not be called for n=0")
	})
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedAndNilPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	var nilPool *Pool
	for name, p := range map[string]*Pool{"closed": pool, "nil": nilPool} {
		n := 50
		results := make([]int, n)
		p.ParallelFor(n, 1, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] = i
			}
		})
		for i := range n {
			if results[i] != i {
				t.Fatalf("%s pool: results[%d] = %d, want %d", name, i, results[i], i)
			}
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	b.ResetTimer()
	for range b.N {
		pool.ParallelFor(len(data), 1024, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}

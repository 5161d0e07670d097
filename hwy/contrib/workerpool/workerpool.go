// Copyright 2025 The go-vkern Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for running batched
// kernels in parallel. A Pool is created once and reused across calls, so a
// batch does not pay for goroutine spawning or channel allocation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	vec.ParallelBatchMax(pool, data, count, dims, peaks)
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines that execute range tasks. It is safe for
// concurrent use; tasks from concurrent ParallelFor calls interleave on the
// same workers.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one contiguous range of a ParallelFor call.
type task struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn(t.start, t.end)
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued tasks drain. It is safe to call more
// than once, but not while a ParallelFor call is in flight.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges of at
// least grain indices each and calls fn(start, end) for every range. It
// blocks until all ranges complete.
//
// A nil or closed pool, or an n too small to split, runs fn(0, n) on the
// calling goroutine.
func (p *Pool) ParallelFor(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	grain = max(grain, 1)

	workers := n / grain
	if p != nil {
		workers = min(workers, p.numWorkers)
	}
	if p == nil || p.closed.Load() || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		wg.Add(1)
		p.tasks <- task{start: start, end: min(start+chunk, n), fn: fn, done: &wg}
	}
	wg.Wait()
}

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool runs independent tasks on a bounded number of goroutines.
package workerspool

import (
	"runtime"
	"sync"
)

// Pool limits the number of tasks running in parallel.
type Pool struct {
	// maxParallelism is the limit of tasks running at once.
	// 0 runs tasks inline, and a negative value means unlimited.
	maxParallelism int

	mu         sync.Mutex
	cond       sync.Cond // Signaled whenever numRunning is decreased.
	numRunning int

	wg sync.WaitGroup
}

// New returns a new Pool with the default parallelism (runtime.NumCPU()).
func New() *Pool {
	p := &Pool{maxParallelism: runtime.NumCPU()}
	p.cond = sync.Cond{L: &p.mu}
	return p
}

// MaxParallelism returns the limit of tasks running at once.
// 0 means tasks run inline, -1 means unlimited.
func (p *Pool) MaxParallelism() int {
	return p.maxParallelism
}

// WithMaxParallelism sets the maxParallelism and returns the pool itself.
//
// Only change it before any task is started.
func (p *Pool) WithMaxParallelism(maxParallelism int) *Pool {
	p.maxParallelism = maxParallelism
	return p
}

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with p.mu acquired.
func (p *Pool) lockedIsFull() bool {
	if p.maxParallelism < 0 {
		return false
	}
	return p.numRunning >= p.maxParallelism
}

// WaitToStart waits until there is a worker available and starts task in a goroutine.
//
// With parallelism disabled (maxParallelism == 0) it runs task inline and returns when it is finished.
func (p *Pool) WaitToStart(task func()) {
	if p.maxParallelism == 0 {
		task()
		return
	}
	p.wg.Add(1)
	if p.maxParallelism < 0 {
		go func() {
			defer p.wg.Done()
			task()
		}()
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for p.lockedIsFull() {
		p.cond.Wait()
	}
	p.numRunning++
	go func() {
		defer p.wg.Done()
		task()
		p.mu.Lock()
		p.numRunning--
		p.cond.Signal()
		p.mu.Unlock()
	}()
}

// Wait blocks until every task started so far has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// ForEach calls fn(ii) for ii in [0, n) on the pool and waits for all of them to finish.
// Calls run in an arbitrary order, so fn must be safe for concurrent use.
func (p *Pool) ForEach(n int, fn func(ii int)) {
	for ii := range n {
		p.WaitToStart(func() { fn(ii) })
	}
	p.Wait()
}

// Package parallel provides the worker pool behind banded bitmap scans
// and background export tasks.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of worker goroutines.
//
// Work items are short-lived pure computations (a row-band scan, a trim),
// so a single shared queue is enough; there is no per-worker queue or
// work stealing. Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case work := <-p.queue:
					work()
				default:
					return
				}
			}
		case work := <-p.queue:
			work()
		}
	}
}

// Submit queues a single work item. If the pool is closed, the item runs
// on the caller's goroutine instead of being dropped.
func (p *Pool) Submit(fn func()) {
	if fn == nil {
		return
	}
	if !p.running.Load() {
		fn()
		return
	}
	select {
	case p.queue <- fn:
	case <-p.done:
		fn()
	}
}

// ExecuteAll runs all work items and waits for completion.
//
// The caller participates: it pulls items from the shared list alongside
// the workers. That guarantees progress even when ExecuteAll is invoked
// from inside a pool worker (an async export trimming a large bitmap does
// exactly that) and every worker is busy. Helper enqueues never block;
// when the queue is full the caller simply keeps the extra shares for
// itself, so concurrent ExecuteAll calls from every worker at once still
// drain.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	run := func() {
		defer wg.Done()
		for {
			i := next.Add(1) - 1
			if i >= int64(len(work)) {
				return
			}
			work[i]()
		}
	}

	helpers := 1
	if p.running.Load() {
		helpers = p.workers
		if helpers > len(work) {
			helpers = len(work)
		}
		if helpers < 1 {
			helpers = 1
		}
	}
	wg.Add(helpers)
	for i := 1; i < helpers; i++ {
		select {
		case p.queue <- run:
		default:
			wg.Done()
		}
	}
	run()
	wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the pool after draining queued work.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

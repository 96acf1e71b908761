package raster

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("pool is closed")

// Pool is a fixed set of worker goroutines sharing one work queue.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	work    chan func()
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
}

// NewPool starts a pool with the given number of workers. If workers is 0 or
// negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		work:    make(chan func(), workers*4),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.work {
		fn()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes all tasks and waits for them to finish. It stops handing out
// tasks once ctx is done and returns ctx's error after the tasks already
// started have completed.
func (p *Pool) Run(ctx context.Context, tasks []func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}

		wg.Add(1)
		fn := func() {
			defer wg.Done()
			task()
		}

		select {
		case p.work <- fn:
		case <-ctx.Done():
			wg.Done()
			return ctx.Err()
		}
	}

	return nil
}

// Close stops the workers after the queued work has drained. Close is
// idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.work)
	p.mu.Unlock()

	p.wg.Wait()
}

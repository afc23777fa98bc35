package colorconv

import "github.com/gogpu/colorconv/internal/parallel"

// Pool is a set of worker goroutines that bulk conversions can be spread
// over with WithPool. Element i of the output is always the conversion of
// element i of the input, whatever the scheduling.
//
// A Pool is safe for concurrent use by multiple batches.
type Pool struct {
	wp *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	wp := parallel.NewWorkerPool(workers)
	Logger().Debug("colorconv: worker pool started", "workers", wp.Workers())
	return &Pool{wp: wp}
}

// Close stops the workers after queued work has finished.
// Batches that use the pool afterwards run serially.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.wp.IsRunning() {
		return
	}
	p.wp.Close()
	Logger().Debug("colorconv: worker pool stopped", "workers", p.wp.Workers())
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.wp.Workers()
}

// running reports whether p can accept work.
func (p *Pool) running() bool {
	return p != nil && p.wp.IsRunning()
}

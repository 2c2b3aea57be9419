package batch

import (
	"context"
	"sync"
)

// Job is one unit of work. Its error is for the job's own bookkeeping; the
// pool does not collect it.
type Job func(ctx context.Context) error

// Pool is what Runner needs from a worker pool. Tests swap in failing ones.
type Pool interface {
	Start(ctx context.Context)
	Submit(Job) error
	// SubmitCtx is Submit that gives up when ctx is done.
	SubmitCtx(ctx context.Context, job Job) error
	Close()
}

// WorkerPool runs jobs on a fixed number of goroutines fed from a bounded
// queue. Board generation is CPU bound, so one worker per CPU is plenty.
type WorkerPool struct {
	size  int
	queue chan Job

	mu       sync.Mutex
	closed   bool
	shutdown chan struct{}
	senders  sync.WaitGroup // Submit calls that passed the closed check
	workers  sync.WaitGroup
}

// NewWorkerPool returns a pool of size workers with room for queueLen
// waiting jobs. Nothing runs until Start.
func NewWorkerPool(size, queueLen int) *WorkerPool {
	size = max(size, 1)
	if queueLen <= 0 {
		queueLen = 2 * size
	}
	return &WorkerPool{
		size:     size,
		queue:    make(chan Job, queueLen),
		shutdown: make(chan struct{}),
	}
}

// Start launches the workers. They stop when ctx is done or, after Close,
// once the queue is empty.
func (p *WorkerPool) Start(ctx context.Context) {
	p.workers.Add(p.size)
	for range p.size {
		go p.work(ctx)
	}
}

func (p *WorkerPool) work(ctx context.Context) {
	defer p.workers.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.queue:
			if !ok {
				return
			}
			_ = job(ctx)
		}
	}
}

// Submit queues job, waiting for room. It returns ErrPoolClosed after
// Close, also when Close happens while it waits.
func (p *WorkerPool) Submit(job Job) error {
	return p.SubmitCtx(context.Background(), job)
}

// SubmitCtx is Submit bounded by ctx.
func (p *WorkerPool) SubmitCtx(ctx context.Context, job Job) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.senders.Add(1)
	p.mu.Unlock()
	defer p.senders.Done()

	select {
	case p.queue <- job:
		return nil
	case <-p.shutdown:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close refuses new jobs, lets the workers finish the queue and waits for
// them.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.shutdown)
	p.mu.Unlock()

	// Every sender has returned, so nobody can write to the queue any more.
	p.senders.Wait()
	close(p.queue)
	p.workers.Wait()
}

// ErrPoolClosed is returned by Submit once the pool is closed.
var ErrPoolClosed = &PoolError{"worker pool closed"}

// PoolError is the error type of pool operations.
type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }

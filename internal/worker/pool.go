// worker/pool.go
package worker

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("worker: pool is closed")

type Job[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	JobID  string
	Output T
	Err    error
}

// Pool runs jobs on a fixed number of goroutines. Jobs sent with Submit
// report on Results; jobs sent with Do report back to their caller only.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

type jobWrapper[T any] struct {
	id    string
	ctx   context.Context
	fn    Job[T]
	reply chan Result[T] // nil = send to the shared results channel
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		res := Result[T]{JobID: job.id}
		if err := job.ctx.Err(); err != nil {
			res.Err = err
		} else {
			res.Output, res.Err = job.fn(job.ctx)
		}

		if job.reply != nil {
			job.reply <- res
			continue
		}
		p.results <- res
	}
}

// Submit queues fn; its result is delivered on Results. It blocks while the
// queue is full unless ctx is done first.
func (p *Pool[T]) Submit(ctx context.Context, id string, fn Job[T]) error {
	return p.enqueue(ctx, jobWrapper[T]{id: id, ctx: ctx, fn: fn})
}

// Do runs fn on the pool and waits for its result.
func (p *Pool[T]) Do(ctx context.Context, id string, fn Job[T]) (T, error) {
	reply := make(chan Result[T], 1)
	if err := p.enqueue(ctx, jobWrapper[T]{id: id, ctx: ctx, fn: fn, reply: reply}); err != nil {
		var zero T
		return zero, err
	}

	select {
	case res := <-reply:
		return res.Output, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs, waits for queued ones to finish and then
// closes Results. Results must be drained for Close to return.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.results)
}

func (p *Pool[T]) enqueue(ctx context.Context, job jobWrapper[T]) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

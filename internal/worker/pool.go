package worker

import "sync"

// Job computes a value of type T.
type Job[T any] func() T

// Result pairs a job's output with the ID it was submitted under.
type Result[T any] struct {
	JobID  string
	Output T
}

// Pool fans submitted jobs out to a fixed set of workers. After Close no
// further Submit calls are allowed; the results channel closes once all
// in-flight jobs have finished, so callers can range over Results.
type Pool[T any] struct {
	jobs    chan job[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type job[T any] struct {
	id string
	fn Job[T]
}

// New starts a pool with the given worker count and channel buffer size.
func New[T any](workerCount, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan job[T], bufferSize),
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
	for j := range p.jobs {
		p.results <- Result[T]{JobID: j.id, Output: j.fn()}
	}
}

// Submit queues a job. It blocks when the job buffer is full.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- job[T]{id: id, fn: fn}
}

// Results returns the channel job outputs arrive on.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs and closes the results channel once the
// workers drain. It returns immediately.
func (p *Pool[T]) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

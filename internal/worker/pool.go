// Package worker counts perft subtrees on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Subtree is the part of a move tree below one root move. Board belongs
// to the subtree: the submitter hands over a private copy.
type Subtree struct {
	Move   string       // Root move leading to Board
	Board  *chess.Board // Position after Move
	ToMove chess.Player // Side to move in Board
	Depth  int          // Plies left to count below Board
}

// Count is the outcome of counting one subtree. Nodes is meaningless when
// Err is set.
type Count struct {
	Move  string
	Nodes uint64
	Err   error
}

// CountFunc counts one subtree.
type CountFunc func(Subtree) Count

// Pool runs a CountFunc over submitted subtrees. Counts arrive on Results
// in completion order.
type Pool struct {
	count     CountFunc
	workers   int
	queueSize int

	queue   chan Subtree
	results chan Count
	wg      sync.WaitGroup

	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of counting goroutines. Values below one
// are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many subtrees may wait for a worker. Values below
// one are ignored.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.queueSize = n
		}
	}
}

// New creates a pool with one worker and room for 64 queued subtrees
// unless options say otherwise.
func New(count CountFunc, opts ...Option) *Pool {
	p := &Pool{
		count:     count,
		workers:   1,
		queueSize: 64,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan Subtree, p.queueSize)
	p.results = make(chan Count, p.queueSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for subtree := range p.queue {
		if p.Stopped() {
			continue // drain
		}
		p.results <- p.count(subtree)
	}
}

// Submit queues a subtree, blocking while the queue is full. It returns
// false without queueing once the pool is stopped.
func (p *Pool) Submit(subtree Subtree) bool {
	if p.Stopped() {
		return false
	}
	p.queue <- subtree
	return true
}

// Stop makes workers skip every subtree they have not started. Counts in
// progress still arrive on Results.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
// Only the submitting goroutine may call it.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel counts are delivered on.
func (p *Pool) Results() <-chan Count {
	return p.results
}

// Package workpool provides a bounded worker pool with futures, built on
// github.com/panjf2000/ants/v2.
//
// Workers are goroutines of an ants pool capped at Config.PoolSize; ants
// starts them on demand and reaps those idle for Config.IdleTimeout. In front
// of ants sits a backlog of Config.MaxQueueDepth tasks: Submit returns as soon
// as its task is queued and blocks, honoring its context, while the backlog is
// full. Each submitted task yields a Future that resolves with the task's
// error; a panicking task resolves with ErrTaskPanic.
//
// Close is idempotent: it stops dispatching, waits for in-flight tasks,
// releases the ants pool and resolves every still-queued Future with
// ErrPoolClosed.
package workpool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/panjf2000/ants/v2"
)

// Sentinel errors for pool configuration and lifecycle.
var (
	// ErrInvalidConfig indicates an out-of-range Config field.
	ErrInvalidConfig = errors.New("workpool: invalid config")

	// ErrPoolClosed is returned by Submit after Close, and resolves queued
	// futures that never ran.
	ErrPoolClosed = errors.New("workpool: pool closed")

	// ErrTaskPanic resolves the future of a task that panicked.
	ErrTaskPanic = errors.New("workpool: task panicked")
)

// releaseTimeout bounds how long Close waits for ants workers to exit.
const releaseTimeout = 5 * time.Second

// Task is a unit of work. Its returned error resolves the Future.
type Task func() error

// Option configures a Pool.
type Option func(*Pool)

// WithLogger routes pool diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Stats is a snapshot of pool occupancy.
type Stats struct {
	Workers int // live workers
	Queued  int // tasks waiting for a worker
}

type job struct {
	fn  Task
	fut *Future
}

// Pool runs submitted tasks on at most PoolSize goroutines.
type Pool struct {
	cfg    Config
	logger *log.Logger

	workers *ants.Pool
	queue   chan job      // backlog, buffered to MaxQueueDepth
	slots   chan struct{} // one token per task handed to ants, capacity PoolSize
	quit    chan struct{} // closed by Close

	submitMu sync.RWMutex // Submit holds R while enqueueing; Close takes W to fence them

	mu     sync.Mutex
	closed bool

	dispatching sync.WaitGroup
	inflight    sync.WaitGroup
	closeOnce   sync.Once
}

// New validates cfg and returns a pool with no live workers.
func New(cfg Config, opts ...Option) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pool{
		cfg:    cfg,
		logger: log.New(io.Discard),
		queue:  make(chan job, cfg.MaxQueueDepth),
		slots:  make(chan struct{}, cfg.PoolSize),
		quit:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	antsOpts := []ants.Option{
		ants.WithLogger(p.logger),
		ants.WithPanicHandler(func(r any) {
			p.logger.Error("workpool: worker panicked outside a task", "panic", r)
		}),
	}
	if cfg.IdleTimeout > 0 {
		antsOpts = append(antsOpts, ants.WithExpiryDuration(cfg.IdleTimeout))
	} else {
		antsOpts = append(antsOpts, ants.WithDisablePurge(true))
	}
	workers, err := ants.NewPool(cfg.PoolSize, antsOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p.workers = workers

	p.dispatching.Add(1)
	go p.dispatch()

	return p, nil
}

// Config returns the pool's configuration.
func (p *Pool) Config() Config { return p.cfg }

// Submit enqueues fn and returns its Future. It blocks while the backlog is
// full, returning ctx.Err() if ctx ends first and ErrPoolClosed if the pool
// is or becomes closed.
func (p *Pool) Submit(ctx context.Context, fn Task) (*Future, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil task", ErrInvalidConfig)
	}
	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrPoolClosed
	}

	j := job{fn: fn, fut: newFuture()}
	select {
	case p.queue <- j:
		return j.fut, nil
	case <-p.quit:
		return nil, ErrPoolClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatch moves queued jobs to ants, one per free slot, until quit.
func (p *Pool) dispatch() {
	defer p.dispatching.Done()

	for {
		select {
		case p.slots <- struct{}{}:
		case <-p.quit:
			return
		}

		var j job
		select {
		case j = <-p.queue:
		case <-p.quit:
			<-p.slots

			return
		}

		p.inflight.Add(1)
		if err := p.workers.Submit(func() { p.run(j) }); err != nil {
			p.inflight.Done()
			<-p.slots
			j.fut.resolve(fmt.Errorf("%w: %w", ErrPoolClosed, err))
		}
	}
}

// run executes one job on an ants worker, converting a panic into ErrTaskPanic.
func (p *Pool) run(j job) {
	defer p.inflight.Done()
	defer func() { <-p.slots }()

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
				p.logger.Warn("workpool: task panicked", "panic", r)
			}
		}()
		err = j.fn()
	}()
	j.fut.resolve(err)
}

// Stats returns current occupancy.
func (p *Pool) Stats() Stats {
	return Stats{Workers: p.workers.Running(), Queued: len(p.queue)}
}

// Close stops the pool. In-flight tasks finish; queued tasks resolve with
// ErrPoolClosed. Safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.quit)

		// Wait out any Submit still between its closed-check and its send.
		p.submitMu.Lock()
		p.submitMu.Unlock() //nolint:staticcheck // fence only

		p.dispatching.Wait()
		p.inflight.Wait()
		if err := p.workers.ReleaseTimeout(releaseTimeout); err != nil {
			p.logger.Warn("workpool: release", "err", err)
		}

		dropped := 0
		for {
			select {
			case j := <-p.queue:
				j.fut.resolve(ErrPoolClosed)
				dropped++
			default:
				if dropped > 0 {
					p.logger.Debug("workpool: dropped queued tasks on close", "count", dropped)
				}

				return
			}
		}
	})
}

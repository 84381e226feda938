package workpool

import "context"

// Future is the pending result of a submitted Task.
type Future struct {
	done chan struct{}
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(err error) {
	f.err = err
	close(f.done)
}

// Done is closed once the task has finished (or was dropped by Close).
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the task resolves or ctx ends, returning the task error
// or ctx.Err().
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the task error once Done is closed, and nil before.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

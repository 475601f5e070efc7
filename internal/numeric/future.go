package numeric

import "context"

// Future is a handle on a value computed in the background.
type Future[T any] struct {
	done  chan struct{}
	value T
}

// Async starts fn in a new goroutine and returns a Future for its result.
func Async[T any](fn func() T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value = fn()
	}()
	return f
}

// Done returns a channel that is closed once the value is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the value is available or ctx ends, whichever comes
// first. In the latter case it returns the zero value and ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

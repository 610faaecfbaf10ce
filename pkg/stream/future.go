package stream

import (
	"context"
	"time"
)

// Future holds the final value of a stream running in the background.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Resolve runs s on its own goroutine and returns a Future of its last value.
// A stream that completes without emitting resolves with ErrEmpty.
func Resolve[T any](ctx context.Context, s Stream[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Pre-canceled contexts never start the source.
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		last, ok, err := Last(ctx, s)
		switch {
		case err != nil:
			f.err = err
		case !ok:
			f.err = ErrEmpty
		default:
			f.value = last
		}
	}()

	return f
}

// Await waits for the stream to complete and returns its last value.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits at most timeout for the stream to complete.
// The stream keeps running when the timeout expires.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the stream has completed, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

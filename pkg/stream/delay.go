package stream

import (
	"context"
	"sync"
	"time"
)

// Delay shifts every value of s later by d, keeping their order.
// The stream completes after its last delayed value; a failure of s is not delayed.
func Delay[T any](d time.Duration, s Stream[T]) Stream[T] {
	if d <= 0 {
		return s
	}
	return func(ctx context.Context, yield func(T) bool) error {
		ctx, cancel := context.WithCancel(ctx)
		q := newDelayQueue[T]()
		go func() {
			err := s(ctx, func(v T) bool {
				q.push(v, time.Now().Add(d))
				return ctx.Err() == nil
			})
			q.finish(err)
		}()
		defer func() {
			cancel()
			<-q.finished
		}()

		timer := time.NewTimer(0)
		defer timer.Stop()
		<-timer.C

		for {
			item, ok, err := q.next(ctx)
			if !ok {
				return err
			}
			if wait := time.Until(item.at); wait > 0 {
				timer.Reset(wait)
				select {
				case <-timer.C:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if !yield(item.value) {
				return nil
			}
		}
	}
}

type timed[T any] struct {
	value T
	at    time.Time
}

// delayQueue buffers values between the source goroutine and the consumer.
type delayQueue[T any] struct {
	mu       sync.Mutex
	items    []timed[T]
	done     bool
	err      error
	signal   chan struct{}
	finished chan struct{}
}

func newDelayQueue[T any]() *delayQueue[T] {
	return &delayQueue[T]{
		signal:   make(chan struct{}, 1),
		finished: make(chan struct{}),
	}
}

func (q *delayQueue[T]) push(v T, at time.Time) {
	q.mu.Lock()
	q.items = append(q.items, timed[T]{value: v, at: at})
	q.mu.Unlock()
	q.notify()
}

func (q *delayQueue[T]) finish(err error) {
	q.mu.Lock()
	q.done = true
	q.err = err
	q.mu.Unlock()
	q.notify()
	close(q.finished)
}

func (q *delayQueue[T]) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// next blocks until a value is buffered or the source is done.
// A source failure is reported before any value still waiting in the queue.
func (q *delayQueue[T]) next(ctx context.Context) (timed[T], bool, error) {
	for {
		q.mu.Lock()
		if q.done && q.err != nil {
			err := q.err
			q.mu.Unlock()
			return timed[T]{}, false, err
		}
		if len(q.items) > 0 {
			item := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return item, true, nil
		}
		done := q.done
		q.mu.Unlock()

		if done {
			return timed[T]{}, false, nil
		}

		select {
		case <-q.signal:
		case <-ctx.Done():
			return timed[T]{}, false, ctx.Err()
		}
	}
}

package stream

import (
	"context"
	"errors"
	"sync"
)

// Observer receives the notifications of a subscription. Nil callbacks are skipped.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

// Subscription is a running stream. All callbacks run on the subscription goroutine.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	err    error
}

// Subscribe starts s on its own goroutine and delivers its values to obs.
// Exactly one of Error or Complete is called when the stream ends on its own.
// Neither is called when the subscription is cancelled with Unsubscribe.
func Subscribe[T any](ctx context.Context, s Stream[T], obs Observer[T]) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		defer cancel()

		err := s(ctx, func(v T) bool {
			if ctx.Err() != nil {
				return false
			}
			if obs.Next != nil {
				obs.Next(v)
			}
			return true
		})

		switch {
		case err == nil && ctx.Err() == nil:
			if obs.Complete != nil {
				obs.Complete()
			}
		case err != nil && !errors.Is(err, context.Canceled):
			sub.err = err
			if obs.Error != nil {
				obs.Error(err)
			}
		case err != nil:
			sub.err = err
		}
	}()

	return sub
}

// Unsubscribe cancels the stream and blocks until it has stopped.
// It is idempotent and must not be called from an observer callback.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the stream has stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the stream stops and returns its failure, if any.
func (s *Subscription) Wait() error {
	<-s.done
	return s.err
}

// Err returns the failure of a stopped stream without blocking.
func (s *Subscription) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

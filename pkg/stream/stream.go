package stream

import (
	"context"
)

// Stream is a lazy sequence of values pushed over time.
//
// Calling a Stream starts an independent run that passes values to yield until
// the source completes, yield returns false, or ctx is cancelled. A stream
// returns nil when it completes or when the consumer stops it, the context
// error when it was cancelled, and any other error when it failed.
// Streams are cold: every call runs the source again, so any number of
// consumers can run the same Stream.
type Stream[T any] func(ctx context.Context, yield func(T) bool) error

// Of returns a stream that emits values in order and completes.
func Of[T any](values ...T) Stream[T] {
	return func(ctx context.Context, yield func(T) bool) error {
		for _, v := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !yield(v) {
				return nil
			}
		}
		return nil
	}
}

// Empty returns a stream that completes without emitting.
func Empty[T any]() Stream[T] {
	return func(ctx context.Context, _ func(T) bool) error {
		return ctx.Err()
	}
}

// Fail returns a stream that fails with err without emitting.
func Fail[T any](err error) Stream[T] {
	return func(context.Context, func(T) bool) error {
		return err
	}
}

// FromFunc returns a stream that emits the value computed by fn, or fails with its error.
func FromFunc[T any](fn func(ctx context.Context) (T, error)) Stream[T] {
	return func(ctx context.Context, yield func(T) bool) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		yield(v)
		return nil
	}
}

// Map applies fn to every value of s.
func Map[T, U any](s Stream[T], fn func(T) U) Stream[U] {
	return func(ctx context.Context, yield func(U) bool) error {
		return s(ctx, func(v T) bool {
			return yield(fn(v))
		})
	}
}

// StartWith emits seed before relaying the values of s.
func StartWith[T any](seed T, s Stream[T]) Stream[T] {
	return func(ctx context.Context, yield func(T) bool) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !yield(seed) {
			return nil
		}
		return s(ctx, yield)
	}
}

// Collect runs s to completion and returns every emitted value.
func Collect[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	var out []T
	err := s(ctx, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out, err
}

// Last runs s to completion and returns the final value.
// The boolean is false when s completed without emitting.
func Last[T any](ctx context.Context, s Stream[T]) (T, bool, error) {
	var (
		last T
		seen bool
	)
	err := s(ctx, func(v T) bool {
		last, seen = v, true
		return true
	})
	return last, seen, err
}

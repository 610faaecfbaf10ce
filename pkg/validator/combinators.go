package validator

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/validflow/pkg/result"
	"github.com/dmitrymomot/validflow/pkg/stream"
)

// Field names the validator of one property of a composed validator.
type Field[T any] struct {
	Name      string
	Validator Validator[T]
}

// StartWith emits seed before the results of v, typically a placeholder
// shown while a slow check runs.
func StartWith[T any](seed result.Result, v Validator[T]) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return stream.StartWith(seed, v(value))
	}
}

// StartInconclusive emits an inconclusive result before the results of v.
func StartInconclusive[T any](v Validator[T]) Validator[T] {
	return StartWith(result.Inconclusive(), v)
}

// Delay shifts every result of v later by d.
func Delay[T any](d time.Duration, v Validator[T]) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return stream.Delay(d, v(value))
	}
}

// Collect runs validators in parallel and merges their latest results with result.Collect.
// A new aggregate is emitted whenever any validator emits, once all of them have emitted.
// With no validators it is Success; a single validator is returned unchanged.
func Collect[T any](validators ...Validator[T]) Validator[T] {
	switch len(validators) {
	case 0:
		return Success[T]()
	case 1:
		return validators[0]
	}
	validators = slices.Clone(validators)

	return func(value T) stream.Stream[result.Result] {
		sources := make([]stream.Stream[result.Result], len(validators))
		for i, v := range validators {
			sources[i] = v(value)
		}
		return stream.CombineLatest(sources, func(latest []result.Result) result.Result {
			return result.Collect(latest...)
		})
	}
}

// Compose runs the field validators in parallel against the same value and labels
// their latest results by field name, in field order. Timing is the same as Collect.
// With no fields it is Success.
func Compose[T any](fields ...Field[T]) Validator[T] {
	if len(fields) == 0 {
		return Success[T]()
	}
	fields = slices.Clone(fields)

	return func(value T) stream.Stream[result.Result] {
		sources := make([]stream.Stream[result.Result], len(fields))
		for i, f := range fields {
			sources[i] = f.Validator(value)
		}
		return stream.CombineLatest(sources, func(latest []result.Result) result.Result {
			props := make([]result.Property, len(fields))
			for i, f := range fields {
				props[i] = result.Property{Name: f.Name, Result: latest[i]}
			}
			return result.Combine(props...)
		})
	}
}

// ComposeMap is Compose with fields ordered by name.
func ComposeMap[T any](validators map[string]Validator[T]) Validator[T] {
	fields := make([]Field[T], 0, len(validators))
	for _, name := range slices.Sorted(maps.Keys(validators)) {
		fields = append(fields, Field[T]{Name: name, Validator: validators[name]})
	}
	return Compose(fields...)
}

type bindState int

const (
	bindRunningFirst bindState = iota
	bindErrorSeen
	bindRunningSecond
	bindDone
)

// Bind runs first and relays its results. If first completes without ever
// reporting an error, second runs next and each of its results is emitted
// merged with the last result of first. Otherwise second never runs.
func Bind[T any](first, second Validator[T]) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return func(ctx context.Context, yield func(result.Result) bool) error {
			state := bindRunningFirst
			last := result.Success()

			err := first(value)(ctx, func(r result.Result) bool {
				last = r
				if r.IsError() {
					state = bindErrorSeen
				}
				if !yield(r) {
					state = bindDone
					return false
				}
				return true
			})
			if err != nil {
				return err
			}
			if state != bindRunningFirst {
				return nil
			}

			state = bindRunningSecond
			return second(value)(ctx, func(r result.Result) bool {
				return yield(result.Collect(last, r))
			})
		}
	}
}

// Chain binds validators left to right: each stage only runs when every previous stage passed.
func Chain[T any](validators ...Validator[T]) Validator[T] {
	if len(validators) == 0 {
		return Success[T]()
	}
	chained := validators[0]
	for _, next := range validators[1:] {
		chained = Bind(chained, next)
	}
	return chained
}

// Focus validates the part of a value selected by get.
func Focus[T, U any](get func(T) U, v Validator[U]) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return v(get(value))
	}
}

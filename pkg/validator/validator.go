package validator

import (
	"context"
	"errors"
	"runtime"

	"github.com/dmitrymomot/validflow/pkg/result"
	"github.com/dmitrymomot/validflow/pkg/stream"
)

// InvalidValueMessage is reported by OfCheck when a failure carries no usable message.
const InvalidValueMessage = "Invalid value"

// Validator validates one value and returns the stream of its current best answers.
// Consumers usually care about the latest emission.
type Validator[T any] func(value T) stream.Stream[result.Result]

// OfResult lifts a function that returns a result into a validator that emits it once.
func OfResult[T any](fn func(T) result.Result) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return func(ctx context.Context, yield func(result.Result) bool) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			yield(fn(value))
			return nil
		}
	}
}

// OfBool lifts a predicate into a validator that reports msg when the predicate fails.
func OfBool[T any](msg string, check func(T) bool) Validator[T] {
	return OfBoolFunc(func(T) string { return msg }, check)
}

// OfBoolFunc is like OfBool with a message computed from the rejected value.
func OfBoolFunc[T any](msg func(T) string, check func(T) bool) Validator[T] {
	return OfResult(func(value T) result.Result {
		if check(value) {
			return result.Success()
		}
		return result.Error(msg(value))
	})
}

// OfMessage lifts a function returning an error message; the empty message means success.
func OfMessage[T any](fn func(T) string) Validator[T] {
	return OfResult(func(value T) result.Result {
		if msg := fn(value); msg != "" {
			return result.Error(msg)
		}
		return result.Success()
	})
}

// OfCheck lifts a function that rejects values by returning an error or by panicking.
// Nothing escapes: the failure becomes an error result.
func OfCheck[T any](fn func(T) error) Validator[T] {
	return OfResult(func(value T) (r result.Result) {
		defer func() {
			if p := recover(); p != nil {
				r = result.Error(failureMessage(p))
			}
		}()
		if err := fn(value); err != nil {
			return result.Error(failureMessage(err))
		}
		return result.Success()
	})
}

// OfFunc lifts a context-aware check, typically a remote one, into a validator.
// A returned error fails the stream; it is not turned into an error result.
func OfFunc[T any](fn func(ctx context.Context, value T) (result.Result, error)) Validator[T] {
	return func(value T) stream.Stream[result.Result] {
		return stream.FromFunc(func(ctx context.Context) (result.Result, error) {
			r, err := fn(ctx, value)
			if err != nil {
				return result.Result{}, errors.Join(ErrCheckFailed, err)
			}
			return r, nil
		})
	}
}

func failureMessage(failure any) string {
	var msg string
	switch f := failure.(type) {
	case string:
		msg = f
	case *runtime.PanicNilError:
		// panic(nil) carries no message.
	case error:
		msg = f.Error()
	}
	if msg == "" {
		return InvalidValueMessage
	}
	return msg
}

// Success accepts every value.
func Success[T any]() Validator[T] {
	return constant[T](result.Success())
}

// Message accepts every value with a hint.
func Message[T any](msg string) Validator[T] {
	return constant[T](result.Message(msg))
}

// Inconclusive reports every value as not settled.
func Inconclusive[T any](msg ...string) Validator[T] {
	return constant[T](result.Inconclusive(msg...))
}

// Error rejects every value with msg.
func Error[T any](msg string) Validator[T] {
	return constant[T](result.Error(msg))
}

func constant[T any](r result.Result) Validator[T] {
	return func(T) stream.Stream[result.Result] {
		return stream.Of(r)
	}
}

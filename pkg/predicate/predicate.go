package predicate

import (
	"github.com/dmitrymomot/validflow/pkg/result"
)

// DefaultMessage is used when a predicate is bridged without a message.
const DefaultMessage = "Error"

// Predicate reports whether a value passes a check.
type Predicate[T any] func(T) bool

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Either passes when any of ps passes. With no predicates it never passes.
func Either[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// All passes when every one of ps passes. With no predicates it always passes.
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Message turns p into a message function: empty when p passes, msg otherwise.
func Message[T any](msg string, p Predicate[T]) func(T) string {
	if msg == "" {
		msg = DefaultMessage
	}
	return func(v T) string {
		if p(v) {
			return ""
		}
		return msg
	}
}

// ToResult turns p into a function returning a success or an error result.
func ToResult[T any](msg string, p Predicate[T]) func(T) result.Result {
	return MessageToResult(Message(msg, p))
}

// MessageToResult turns a message function into a result function.
// An empty message is a success.
func MessageToResult[T any](fn func(T) string) func(T) result.Result {
	return func(v T) result.Result {
		if msg := fn(v); msg != "" {
			return result.Error(msg)
		}
		return result.Success()
	}
}

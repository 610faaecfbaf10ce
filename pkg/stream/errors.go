package stream

import (
	"context"
	"errors"
)

var (
	// ErrTimeout is returned when a future is not resolved in time.
	ErrTimeout = errors.New("stream: timeout waiting for result")

	// ErrEmpty is returned when a stream completes without emitting a value.
	ErrEmpty = errors.New("stream: completed without values")
)

// ignoreCanceled drops the cancellation error caused by stopping children ourselves.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Package stream provides a small push-based stream abstraction for values that
// are refined over time.
//
// A Stream is a function that pushes values to a yield callback until it
// completes, fails or is cancelled through its context. Streams are lazy and
// cold: nothing runs until the stream is called, and every call is an
// independent run.
//
//	s := stream.StartWith(0, stream.Delay(50*time.Millisecond, stream.Of(1, 2)))
//	values, err := stream.Collect(ctx, s) // [0 1 2]
//
// # Combining
//
// CombineLatest runs several streams at once and re-projects the latest value
// of each every time any of them emits. Per-source values live in an arena of
// latest-value slots with a ready flag each; the projection only runs on the
// consumer goroutine, so projections never need locking.
//
// # Subscriptions
//
// Subscribe runs a stream in the background and delivers notifications to an
// Observer. Unsubscribe cancels the run and returns only after the stream and
// every stream it started have stopped. Resolve returns a Future of the last
// value for callers that only care about the final answer.
//
// # Error Handling
//
// A stream reports failure by returning an error. Combinators never swallow
// failures: the first failure cancels sibling streams and is returned to the
// caller. Cancellation caused by the consumer stopping early is not a failure.
package stream

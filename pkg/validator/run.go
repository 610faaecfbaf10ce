package validator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validflow/pkg/logger"
	"github.com/dmitrymomot/validflow/pkg/result"
	"github.com/dmitrymomot/validflow/pkg/stream"
)

// Validate runs v to completion and returns its final result.
// A validator that emits nothing accepts the value.
func Validate[T any](ctx context.Context, v Validator[T], value T) (result.Result, error) {
	last, ok, err := stream.Last(ctx, v(value))
	if err != nil {
		return result.Result{}, err
	}
	if !ok {
		return result.Success(), nil
	}
	return last, nil
}

// Resolve runs v in the background and returns a future of its final result.
// A validator that emits nothing resolves to success.
func Resolve[T any](ctx context.Context, v Validator[T], value T) *stream.Future[result.Result] {
	return stream.Resolve(ctx, stream.StartWith(result.Success(), v(value)))
}

// Logged traces every run of v: start, each emission with its severity,
// completion and failure. Each run gets its own run id.
// A nil logger uses slog.Default.
func Logged[T any](log *slog.Logger, name string, v Validator[T]) Validator[T] {
	if log == nil {
		log = slog.Default()
	}
	return func(value T) stream.Stream[result.Result] {
		src := v(value)
		return func(ctx context.Context, yield func(result.Result) bool) error {
			l := log.With(logger.Validator(name), logger.RunID(uuid.NewString()))
			start := time.Now()
			emitted := 0

			l.DebugContext(ctx, "validation started")
			err := src(ctx, func(r result.Result) bool {
				emitted++
				l.DebugContext(ctx, "validation emitted",
					logger.Emission(emitted),
					logger.Severity(r.Severity()),
				)
				return yield(r)
			})

			switch {
			case err == nil:
				l.DebugContext(ctx, "validation completed",
					logger.Emissions(emitted),
					logger.Duration(time.Since(start)),
				)
			case errors.Is(err, context.Canceled):
				l.DebugContext(ctx, "validation cancelled", logger.Emissions(emitted))
			default:
				l.ErrorContext(ctx, "validation failed",
					logger.Emissions(emitted),
					logger.Error(err),
				)
			}
			return err
		}
	}
}

package validator_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validflow/pkg/result"
	"github.com/dmitrymomot/validflow/pkg/stream"
	"github.com/dmitrymomot/validflow/pkg/validator"
)

func slowHint() validator.Validator[string] {
	return validator.StartInconclusive(validator.Delay(20*time.Millisecond, validator.Message[string]("Hint")))
}

func slowError() validator.Validator[string] {
	return validator.StartInconclusive(validator.Delay(60*time.Millisecond, validator.Error[string]("Error")))
}

// counted wraps v and counts how many times it was started.
func counted(v validator.Validator[string], runs *atomic.Int32) validator.Validator[string] {
	return func(value string) stream.Stream[result.Result] {
		return func(ctx context.Context, yield func(result.Result) bool) error {
			runs.Add(1)
			return v(value)(ctx, yield)
		}
	}
}

// pending never answers and records whether it is still running.
func pending(running *atomic.Int32) validator.Validator[string] {
	return func(string) stream.Stream[result.Result] {
		return func(ctx context.Context, yield func(result.Result) bool) error {
			running.Add(1)
			defer running.Add(-1)
			if !yield(result.Inconclusive()) {
				return nil
			}
			<-ctx.Done()
			return ctx.Err()
		}
	}
}

func TestStartWith(t *testing.T) {
	v := validator.StartWith(result.Message("checking"), validator.Error[string]("taken"))
	assert.Equal(t, []result.Result{result.Message("checking"), result.Error("taken")}, emissions(t, v, "a"))

	v = validator.StartInconclusive(validator.Success[string]())
	assert.Equal(t, []result.Result{result.Inconclusive(), result.Success()}, emissions(t, v, "a"))
}

func TestDelay(t *testing.T) {
	start := time.Now()
	got := emissions(t, validator.Delay(30*time.Millisecond, validator.Error[string]("late")), "a")
	assert.Equal(t, []result.Result{result.Error("late")}, got)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestCollect(t *testing.T) {
	t.Run("no validators is success", func(t *testing.T) {
		assert.Equal(t, []result.Result{result.Success()}, emissions(t, validator.Collect[string](), "a"))
	})

	t.Run("single validator is unchanged", func(t *testing.T) {
		got := emissions(t, validator.Collect(slowError()), "a")
		assert.Equal(t, []result.Result{result.Inconclusive(), result.Error("Error")}, got)
	})

	t.Run("re-emits as answers arrive", func(t *testing.T) {
		got := emissions(t, validator.Collect(slowHint(), slowError()), "a")
		assert.Equal(t, []result.Result{
			result.Inconclusive(),
			result.NewCollection(result.Message("Hint"), result.Inconclusive()),
			result.NewCollection(result.Message("Hint"), result.Error("Error")),
		}, got)
	})

	t.Run("keeps declaration order", func(t *testing.T) {
		got := emissions(t, validator.Collect(slowError(), validator.Message[string]("Hint")), "a")
		require.NotEmpty(t, got)
		assert.Equal(t, result.NewCollection(result.Error("Error"), result.Message("Hint")), got[len(got)-1])
	})

	t.Run("failure stops siblings", func(t *testing.T) {
		var running atomic.Int32
		boom := errors.New("unavailable")
		failing := validator.Delay(10*time.Millisecond, validator.OfFunc(func(context.Context, string) (result.Result, error) {
			return result.Result{}, boom
		}))

		_, err := stream.Collect(context.Background(), validator.Collect(pending(&running), failing)("a"))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int32(0), running.Load())
	})

	t.Run("cancellation stops children", func(t *testing.T) {
		var running atomic.Int32
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := stream.Collect(ctx, validator.Collect(pending(&running), pending(&running))("a"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, int32(0), running.Load())
	})
}

func TestCompose(t *testing.T) {
	t.Run("no fields emits one success", func(t *testing.T) {
		assert.Equal(t, []result.Result{result.Success()}, emissions(t, validator.Compose[string](), "a"))
	})

	t.Run("single field", func(t *testing.T) {
		got := emissions(t, validator.Compose(validator.Field[string]{Name: "field1", Validator: slowError()}), "a")
		assert.Equal(t, []result.Result{
			result.Combine(result.Property{Name: "field1", Result: result.Inconclusive()}),
			result.Combine(result.Property{Name: "field1", Result: result.Error("Error")}),
		}, got)
	})

	t.Run("two fields", func(t *testing.T) {
		v := validator.Compose(
			validator.Field[string]{Name: "field1", Validator: slowHint()},
			validator.Field[string]{Name: "field2", Validator: slowError()},
		)
		object := func(first, second result.Result) result.Result {
			return result.Combine(
				result.Property{Name: "field1", Result: first},
				result.Property{Name: "field2", Result: second},
			)
		}
		assert.Equal(t, []result.Result{
			object(result.Inconclusive(), result.Inconclusive()),
			object(result.Message("Hint"), result.Inconclusive()),
			object(result.Message("Hint"), result.Error("Error")),
		}, emissions(t, v, "a"))
	})

	t.Run("cancellation stops every field", func(t *testing.T) {
		var running atomic.Int32
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		v := validator.Compose(
			validator.Field[string]{Name: "field1", Validator: pending(&running)},
			validator.Field[string]{Name: "field2", Validator: pending(&running)},
		)
		got, err := stream.Collect(ctx, v("a"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, []result.Result{result.Combine(
			result.Property{Name: "field1", Result: result.Inconclusive()},
			result.Property{Name: "field2", Result: result.Inconclusive()},
		)}, got)
		assert.Equal(t, int32(0), running.Load())
	})

	t.Run("field failure stops its siblings", func(t *testing.T) {
		var running atomic.Int32
		boom := errors.New("unavailable")
		v := validator.Compose(
			validator.Field[string]{Name: "slow", Validator: pending(&running)},
			validator.Field[string]{Name: "remote", Validator: validator.Delay(10*time.Millisecond, validator.OfFunc(func(context.Context, string) (result.Result, error) {
				return result.Result{}, boom
			}))},
		)
		_, err := stream.Collect(context.Background(), v("a"))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int32(0), running.Load())
	})

	t.Run("map keys are sorted", func(t *testing.T) {
		v := validator.ComposeMap(map[string]validator.Validator[string]{
			"zeta":  validator.Error[string]("z"),
			"alpha": validator.Success[string](),
		})
		got, err := validator.Validate(context.Background(), v, "a")
		require.NoError(t, err)
		props := got.Properties()
		require.Len(t, props, 2)
		assert.Equal(t, "alpha", props[0].Name)
		assert.Equal(t, "zeta", props[1].Name)
		assert.True(t, got.IsError())
	})
}

func TestBind(t *testing.T) {
	t.Run("second never runs after an error", func(t *testing.T) {
		var runs atomic.Int32
		v := validator.Bind(slowError(), counted(validator.Message[string]("Hint"), &runs))

		got := emissions(t, v, "a")
		assert.Equal(t, []result.Result{result.Inconclusive(), result.Error("Error")}, got)
		assert.Equal(t, int32(0), runs.Load())
	})

	t.Run("second results are merged with the last result of first", func(t *testing.T) {
		v := validator.Bind(
			validator.StartInconclusive(validator.Message[string]("first")),
			validator.StartInconclusive(validator.Error[string]("second")),
		)
		assert.Equal(t, []result.Result{
			result.Inconclusive(),
			result.Message("first"),
			result.NewCollection(result.Message("first"), result.Inconclusive()),
			result.NewCollection(result.Message("first"), result.Error("second")),
		}, emissions(t, v, "a"))
	})

	t.Run("empty first stage runs second", func(t *testing.T) {
		empty := func(string) stream.Stream[result.Result] { return stream.Empty[result.Result]() }
		v := validator.Bind(empty, validator.Error[string]("second"))
		assert.Equal(t, []result.Result{result.Error("second")}, emissions(t, v, "a"))
	})

	t.Run("cancellation stops the first stage", func(t *testing.T) {
		var running, runs atomic.Int32
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		got, err := stream.Collect(ctx, validator.Bind(pending(&running), counted(validator.Success[string](), &runs))("a"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, []result.Result{result.Inconclusive()}, got)
		assert.Equal(t, int32(0), running.Load())
		assert.Equal(t, int32(0), runs.Load())
	})

	t.Run("cancellation stops the second stage", func(t *testing.T) {
		var running atomic.Int32
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		got, err := stream.Collect(ctx, validator.Bind(validator.Message[string]("first"), pending(&running))("a"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, []result.Result{
			result.Message("first"),
			result.NewCollection(result.Message("first"), result.Inconclusive()),
		}, got)
		assert.Equal(t, int32(0), running.Load())
	})

	t.Run("unsubscribe stops the second stage", func(t *testing.T) {
		var running atomic.Int32
		started := make(chan struct{})
		sub := stream.Subscribe(context.Background(), validator.Bind(validator.Success[string](), pending(&running))("a"),
			stream.Observer[result.Result]{
				Next: func(r result.Result) {
					if r.IsInconclusive() {
						close(started)
					}
				},
			})

		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("second stage did not start")
		}
		sub.Unsubscribe()
		assert.Equal(t, int32(0), running.Load())
	})

	t.Run("first failure is returned", func(t *testing.T) {
		var runs atomic.Int32
		boom := errors.New("down")
		first := validator.OfFunc(func(context.Context, string) (result.Result, error) {
			return result.Result{}, boom
		})
		_, err := stream.Collect(context.Background(), validator.Bind(first, counted(validator.Success[string](), &runs))("a"))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, int32(0), runs.Load())
	})
}

func TestChain(t *testing.T) {
	var runs atomic.Int32
	v := validator.Chain(
		validator.Message[string]("one"),
		validator.Error[string]("two"),
		counted(validator.Message[string]("three"), &runs),
	)

	got, err := validator.Validate(context.Background(), v, "a")
	require.NoError(t, err)
	assert.Equal(t, result.NewCollection(result.Message("one"), result.Error("two")), got)
	assert.Equal(t, int32(0), runs.Load())

	assert.Equal(t, []result.Result{result.Success()}, emissions(t, validator.Chain[string](), "a"))
}

func TestFocus(t *testing.T) {
	type signup struct {
		Email string
	}
	v := validator.Focus(func(s signup) string { return s.Email }, validator.OfBool("is required", func(s string) bool { return s != "" }))

	assert.Equal(t, []result.Result{result.Success()}, emissions(t, v, signup{Email: "a@b.c"}))
	assert.Equal(t, []result.Result{result.Error("is required")}, emissions(t, v, signup{}))
}

// Package validator composes validators whose answers are refined over time.
//
// A Validator takes one value and returns a stream of result.Result values.
// Synchronous checks emit once and complete; slow checks can emit a
// placeholder first and their real answer later. Consumers show the latest
// emission.
//
// # Adapters
//
// Plain functions enter the package through adapters:
//
//   - OfResult       func(T) result.Result
//   - OfBool         predicate plus message (OfBoolFunc computes the message)
//   - OfMessage      func(T) string, where the empty string means success
//   - OfCheck        func(T) error; returned errors and panics become error results
//   - OfFunc         context-aware checks such as remote lookups
//
// # Combinators
//
//   - StartWith / StartInconclusive   emit a placeholder before the real answer
//   - Delay                           shift every answer later
//   - Collect                         run validators in parallel, merge into a collection
//   - Compose / ComposeMap            run validators in parallel, label results by property
//   - Bind / Chain                    run stages in order, stop at the first failing stage
//   - Focus                           validate a part of the value
//   - Logged                          trace runs with a *slog.Logger
//
// Collect and Compose re-aggregate every time any child emits, using the
// latest answer of every child. The first aggregate waits until every child
// has answered once. Element and property order always follow declaration
// order, never arrival order.
//
// # Usage
//
//	available := validator.OfFunc(func(ctx context.Context, v any) (result.Result, error) {
//	    return lookupEmail(ctx, v)
//	})
//
//	signup := validator.Compose(
//	    validator.Field[any]{Name: "email", Validator: validator.Focus(field("email"),
//	        validator.Chain(validator.Required(), validator.IsString(),
//	            validator.StartInconclusive(available)))},
//	    validator.Field[any]{Name: "name", Validator: validator.Focus(field("name"),
//	        validator.Collect(validator.Required(), validator.MaxLen(64)))},
//	)
//
//	r, err := validator.Validate(ctx, signup, document)
//
// # Error Handling
//
// A rejected value is data: an error-severity result. A failing check is a
// Go error returned by the stream (see OfFunc and ErrCheckFailed). Combinators
// propagate such failures to the caller and stop all sibling checks.
//
// Cancelling the context passed to a stream stops every check it started
// before the stream returns.
package validator

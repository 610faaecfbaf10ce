// Package result defines validation outcomes and the algebra that aggregates them.
//
// A Result is an immutable value of one of three shapes:
//
//   - a leaf outcome (Success, Message, Inconclusive, Error);
//   - a collection: an ordered, unlabeled aggregate of results;
//   - an object: an ordered aggregate of results labeled by property name.
//
// Every result has a Severity. Severities are ordered
// success < inconclusive < error, and an aggregate always carries the worst
// severity of its children. The IsSuccess, IsInconclusive and IsError
// predicates are derived from the severity and cannot disagree with it.
//
// Aggregate messages are derived when the aggregate is built. If any child
// failed, only failing children are shown; otherwise every non-empty child
// message is shown. Lines are separated by LineBreak. Object messages put the
// property name on its own line before the property message.
//
// # Algebra
//
// ReduceCollection and Collect merge results produced independently for the
// same value: successes are dropped, nested collections are flattened and
// duplicate messages are removed, keeping the first occurrence. Combine
// labels results by property. Bind folds the results of sequential stages and
// discards everything after the first error.
//
//	r := result.Collect(
//	    result.Message("looks like a personal address"),
//	    result.Success(),
//	    result.Error("domain does not accept mail"),
//	)
//	r.IsError() // true
//	r.Message() // "domain does not accept mail"
//
// All functions in this package are pure and total; none of them fail or
// depend on anything but their inputs.
package result

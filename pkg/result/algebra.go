package result

import (
	"maps"
	"slices"
)

// ReduceCollection merges next into the accumulated results of independent checks.
//
// Success results are dropped, nested collections are flattened and a message
// result equal to one already accumulated is skipped, so the first occurrence wins.
// Object results are always appended. The order of first appearance is kept.
// acc itself is never written to; the returned slice may be a new one.
func ReduceCollection(acc []Result, next Result) []Result {
	switch next.Kind() {
	case KindSuccess:
		return acc
	case KindCollection:
		for _, child := range next.results {
			acc = ReduceCollection(acc, child)
		}
		return acc
	case KindMessage:
		for _, r := range acc {
			if r.Kind() == KindMessage && r.severity == next.severity && r.message == next.message {
				return acc
			}
		}
		return append(slices.Clip(acc), next)
	default:
		return append(slices.Clip(acc), next)
	}
}

// Collect folds results with ReduceCollection and collapses the outcome:
// nothing left is a success, a single survivor is returned as is,
// anything more becomes a collection.
func Collect(results ...Result) Result {
	var acc []Result
	for _, r := range results {
		acc = ReduceCollection(acc, r)
	}
	switch len(acc) {
	case 0:
		return Success()
	case 1:
		return acc[0]
	default:
		return NewCollection(acc...)
	}
}

// Combine builds an object result from labeled results in the given order.
func Combine(props ...Property) Result {
	if len(props) == 0 {
		return Success()
	}
	return NewObject(props...)
}

// CombineMap builds an object result from a map, ordering properties by name.
func CombineMap(named map[string]Result) Result {
	props := make([]Property, 0, len(named))
	for _, name := range slices.Sorted(maps.Keys(named)) {
		props = append(props, Property{Name: name, Result: named[name]})
	}
	return Combine(props...)
}

// Bind collects results of sequential stages, discarding everything after the first error.
func Bind(results ...Result) Result {
	for i, r := range results {
		if r.IsError() {
			return Collect(results[:i+1]...)
		}
	}
	return Collect(results...)
}

// Package predicate provides boolean checks and the bridges that turn them into
// validation messages and results.
//
// Predicates are plain functions and compose with Not, Either and All:
//
//	isOptionalText := predicate.Either[any](predicate.IsNil, predicate.IsString)
//
// Message and ToResult lift a predicate into the message and result forms
// accepted by the validator adapters. The common predicates work on untyped
// values (any) as decoded from JSON or YAML documents.
package predicate

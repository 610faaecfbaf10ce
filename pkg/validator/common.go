package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/validflow/pkg/predicate"
)

// Checks for untyped values such as decoded JSON or YAML documents.

// Required rejects nil values and blank strings.
func Required() Validator[any] {
	return OfBool[any]("is required", predicate.IsRequired)
}

// IsString rejects values that are not strings.
func IsString() Validator[any] {
	return OfMessage[any](predicate.Message[any]("should be a string", predicate.IsString))
}

// IsNumber rejects values that are not integers or floats.
func IsNumber() Validator[any] {
	return OfMessage[any](predicate.Message[any]("should be a number", predicate.IsNumber))
}

// IsBool rejects values that are not booleans.
func IsBool() Validator[any] {
	return OfMessage[any](predicate.Message[any]("should be a boolean", predicate.IsBool))
}

// IsMap rejects values that are not maps or structs.
func IsMap() Validator[any] {
	return OfMessage[any](predicate.Message[any]("should be an object", predicate.IsMap))
}

// IsSlice rejects values that are not slices or arrays.
func IsSlice() Validator[any] {
	return OfMessage[any](predicate.Message[any]("should be an array", predicate.IsSlice))
}

// MinLen rejects strings shorter than n characters.
func MinLen(n int) Validator[any] {
	return OfBool[any](fmt.Sprintf("must be at least %d characters long", n), predicate.MinLen(n))
}

// MaxLen rejects strings longer than n characters.
func MaxLen(n int) Validator[any] {
	return OfBool[any](fmt.Sprintf("must be at most %d characters long", n), predicate.MaxLen(n))
}

// Email rejects values that are not bare email addresses.
func Email() Validator[any] {
	return OfBool[any]("must be a valid email address", predicate.IsEmail)
}

// URL rejects values that are not absolute URLs with a host.
func URL() Validator[any] {
	return OfBool[any]("must be a valid URL", predicate.IsURL)
}

// UUID rejects values that are not UUIDs in canonical form.
func UUID() Validator[any] {
	return OfBool[any]("must be a valid UUID", predicate.IsUUID)
}

// Pattern rejects values that are not strings matched by re.
// description names the expected format in the message.
func Pattern(re *regexp.Regexp, description string) Validator[any] {
	return OfBool[any]("must match "+description, predicate.Matches(re))
}

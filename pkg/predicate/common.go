package predicate

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsNil passes for untyped nil and for nil pointers, maps, slices, channels, funcs and interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNotNil is the negation of IsNil.
var IsNotNil = Not[any](IsNil)

// IsBool passes for booleans.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber passes for every integer and floating point kind.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsString passes for strings, the empty string included.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsFunc passes for function values.
func IsFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// IsMap passes for maps and structs, the keyed shapes of Go values.
func IsMap(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Struct:
		return true
	default:
		return false
	}
}

// IsSlice passes for slices and arrays.
func IsSlice(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsEmpty passes for the empty string only.
func IsEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s == ""
}

// IsNonEmpty passes for non-empty strings.
var IsNonEmpty = All[any](IsString, Not[any](IsEmpty))

// IsRequired passes for present values. Nil values and blank strings are missing.
func IsRequired(v any) bool {
	if IsNil(v) {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// MinLen passes for strings with at least n characters after NFC normalization.
func MinLen(n int) Predicate[any] {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && runeCount(s) >= n
	}
}

// MaxLen passes for strings with at most n characters after NFC normalization.
func MaxLen(n int) Predicate[any] {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && runeCount(s) <= n
	}
}

func runeCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

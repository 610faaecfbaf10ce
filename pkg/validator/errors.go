package validator

import "errors"

// ErrCheckFailed wraps errors returned by checks adapted with OfFunc.
// It marks a fault of the check itself, not a rejected value.
var ErrCheckFailed = errors.New("validator: check failed")

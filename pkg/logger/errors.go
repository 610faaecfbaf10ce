package logger

import "errors"

var (
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("logger: invalid log format")

	// ErrInvalidLevel is returned for an unknown level name.
	ErrInvalidLevel = errors.New("logger: invalid log level")
)

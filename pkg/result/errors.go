package result

import "errors"

var (
	// ErrUnknownSeverity is returned when a severity level cannot be recognised.
	ErrUnknownSeverity = errors.New("result: unknown severity")

	// ErrUnknownKind is returned when decoding a result with an unrecognised kind.
	ErrUnknownKind = errors.New("result: unknown kind")
)

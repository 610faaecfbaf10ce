package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validator records the validator name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// RunID records the identifier of one validation run under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Severity records a result severity under the key "severity".
// Any value implementing fmt.Stringer is logged by its name.
func Severity(s interface{ String() string }) slog.Attr {
	return slog.String("severity", s.String())
}

// Emission records the position of an emission within a run under the key "emission".
func Emission(n int) slog.Attr {
	return slog.Int("emission", n)
}

// Emissions records how many values a run produced under the key "emissions".
func Emissions(n int) slog.Attr {
	return slog.Int("emissions", n)
}

// Property records a property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// Document records the validated document name under the key "document".
func Document(name string) slog.Attr {
	return slog.String("document", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

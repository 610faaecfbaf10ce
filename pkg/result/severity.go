package result

import "fmt"

// Severity is the outcome class of a result.
// Severities are totally ordered: Success < Inconclusive < Error.
type Severity int

const (
	// SeveritySuccess means the value passed. It is the identity of WorstSeverity.
	SeveritySuccess Severity = iota
	// SeverityInconclusive means the check has not settled yet, e.g. a remote lookup is pending.
	SeverityInconclusive
	// SeverityError means the value failed. It absorbs every other severity.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityInconclusive:
		return "inconclusive"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Validate checks if the severity is one of the known levels.
func (s Severity) Validate() error {
	switch s {
	case SeveritySuccess, SeverityInconclusive, SeverityError:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSeverity, int(s))
	}
}

// MarshalText encodes s by name. Unknown levels return ErrUnknownSeverity.
func (s Severity) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name produced by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "success":
		*s = SeveritySuccess
	case "inconclusive":
		*s = SeverityInconclusive
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeverity, string(text))
	}
	return nil
}

// WorstSeverity returns the more severe of a and b.
func WorstSeverity(a, b Severity) Severity {
	switch a {
	case SeverityError:
		return SeverityError
	case SeverityInconclusive:
		if b == SeverityError {
			return SeverityError
		}
		return SeverityInconclusive
	default:
		return b
	}
}

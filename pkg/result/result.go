package result

import (
	"slices"
	"strings"
)

// LineBreak separates the lines of an aggregated message.
const LineBreak = "\r\n"

// Kind tells which variant a Result is.
type Kind string

const (
	KindSuccess    Kind = "success"
	KindMessage    Kind = "message"
	KindCollection Kind = "collection"
	KindObject     Kind = "object"
)

// Property labels the result of one named part of a value.
type Property struct {
	Name   string
	Result Result
}

// Result is an immutable validation outcome.
// The zero value is the success result.
type Result struct {
	kind       Kind
	severity   Severity
	message    string
	results    []Result
	properties []Property
}

// Success returns the result of a passed check. Its message is empty.
func Success() Result {
	return Result{kind: KindSuccess}
}

// Message returns a passing result that carries a hint for the user.
func Message(msg string) Result {
	return Result{kind: KindMessage, severity: SeveritySuccess, message: msg}
}

// Inconclusive returns a result for a check that has not settled yet.
// Extra message arguments are joined with a line break.
func Inconclusive(msg ...string) Result {
	return Result{kind: KindMessage, severity: SeverityInconclusive, message: joinLines(msg)}
}

// Error returns a failed result with the given message.
func Error(msg string) Result {
	return Result{kind: KindMessage, severity: SeverityError, message: msg}
}

// NewCollection aggregates unlabeled results.
// Its severity is the worst of its children, success when empty.
// When any child failed only failing children contribute to the message.
func NewCollection(results ...Result) Result {
	severity := SeveritySuccess
	for _, r := range results {
		severity = WorstSeverity(severity, r.severity)
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		if severity == SeverityError && !r.IsError() {
			continue
		}
		if r.message != "" {
			lines = append(lines, r.message)
		}
	}

	return Result{
		kind:     KindCollection,
		severity: severity,
		message:  strings.Join(lines, LineBreak),
		results:  cloneOrNil(results),
	}
}

// NewObject aggregates results labeled by property name, keeping their order.
// Each visible property contributes its name as a line right before its message.
func NewObject(props ...Property) Result {
	severity := SeveritySuccess
	for _, p := range props {
		severity = WorstSeverity(severity, p.Result.severity)
	}

	lines := make([]string, 0, len(props)*2)
	for _, p := range props {
		if severity == SeverityError {
			if !p.Result.IsError() {
				continue
			}
		} else if p.Result.message == "" {
			continue
		}
		lines = append(lines, p.Name)
		if p.Result.message != "" {
			lines = append(lines, p.Result.message)
		}
	}

	return Result{
		kind:       KindObject,
		severity:   severity,
		message:    strings.Join(lines, LineBreak),
		properties: cloneOrNil(props),
	}
}

// Kind returns the variant of r. The zero Result is KindSuccess.
func (r Result) Kind() Kind {
	if r.kind == "" {
		return KindSuccess
	}
	return r.kind
}

// Severity returns the severity of r, the worst of its children for aggregates.
func (r Result) Severity() Severity { return r.severity }

// Message returns the text shown for r. Aggregates join their visible lines with LineBreak.
func (r Result) Message() string { return r.message }

// Results returns a copy of the children of a collection result.
func (r Result) Results() []Result { return slices.Clone(r.results) }

// Properties returns a copy of the labeled children of an object result.
func (r Result) Properties() []Property { return slices.Clone(r.properties) }

// IsSuccess reports whether r passed, hints included.
func (r Result) IsSuccess() bool { return r.severity == SeveritySuccess }

// IsInconclusive reports whether r has not settled yet.
func (r Result) IsInconclusive() bool { return r.severity == SeverityInconclusive }

// IsError reports whether r rejects the value.
func (r Result) IsError() bool { return r.severity == SeverityError }

// Property returns the result of the named property of an object result.
func (r Result) Property(name string) (Result, bool) {
	for _, p := range r.properties {
		if p.Name == name {
			return p.Result, true
		}
	}
	return Result{}, false
}

// Equal reports whether r and other are structurally equal.
func (r Result) Equal(other Result) bool {
	if r.Kind() != other.Kind() || r.severity != other.severity || r.message != other.message {
		return false
	}
	if !slices.EqualFunc(r.results, other.results, Result.Equal) {
		return false
	}
	return slices.EqualFunc(r.properties, other.properties, func(a, b Property) bool {
		return a.Name == b.Name && a.Result.Equal(b.Result)
	})
}

// String returns the severity followed by the message, if any.
func (r Result) String() string {
	if r.message == "" {
		return r.severity.String()
	}
	return r.severity.String() + ": " + r.message
}

func joinLines(parts []string) string {
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			lines = append(lines, p)
		}
	}
	return strings.Join(lines, LineBreak)
}

// cloneOrNil keeps empty aggregates comparable with reflect.DeepEqual.
func cloneOrNil[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

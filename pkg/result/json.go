package result

import (
	"encoding/json"
	"fmt"
)

type jsonProperty struct {
	Property string `json:"property"`
	Result   Result `json:"result"`
}

type jsonResult struct {
	Kind           Kind           `json:"kind"`
	Severity       Severity       `json:"severity"`
	IsSuccess      bool           `json:"isSuccess"`
	IsInconclusive bool           `json:"isInconclusive"`
	IsError        bool           `json:"isError"`
	Message        string         `json:"message"`
	Results        *[]Result      `json:"results,omitempty"`
	Properties     []jsonProperty `json:"properties,omitempty"`
}

// MarshalJSON encodes the result together with its derived predicates.
func (r Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Kind:           r.Kind(),
		Severity:       r.severity,
		IsSuccess:      r.IsSuccess(),
		IsInconclusive: r.IsInconclusive(),
		IsError:        r.IsError(),
		Message:        r.message,
	}
	if r.Kind() == KindCollection {
		results := r.results
		if results == nil {
			results = []Result{}
		}
		out.Results = &results
	}
	for _, p := range r.properties {
		out.Properties = append(out.Properties, jsonProperty{Property: p.Name, Result: p.Result})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a result and re-derives aggregate severity and message
// from the children, ignoring the encoded derived fields.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in jsonResult
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Kind {
	case KindSuccess, "":
		*r = Success()
	case KindMessage:
		if err := in.Severity.Validate(); err != nil {
			return err
		}
		*r = Result{kind: KindMessage, severity: in.Severity, message: in.Message}
	case KindCollection:
		var results []Result
		if in.Results != nil {
			results = *in.Results
		}
		*r = NewCollection(results...)
	case KindObject:
		props := make([]Property, 0, len(in.Properties))
		for _, p := range in.Properties {
			props = append(props, Property{Name: p.Property, Result: p.Result})
		}
		*r = NewObject(props...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
	return nil
}

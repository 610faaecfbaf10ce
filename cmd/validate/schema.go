package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validflow/pkg/validator"
)

var (
	ErrInvalidSchema = errors.New("validate: invalid schema")
	ErrUnknownRule   = errors.New("validate: unknown rule")
)

// Document is a decoded YAML mapping.
type Document = map[string]any

// Schema lists the fields of a document in the order they are reported.
type Schema struct {
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec describes one document field. Rules run in order and stop at the
// first failing rule. Remote fields answer late, after an inconclusive placeholder.
type FieldSpec struct {
	Name   string   `yaml:"name"`
	Rules  []string `yaml:"rules"`
	Remote bool     `yaml:"remote"`
}

func parseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, errors.Join(ErrInvalidSchema, err)
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("%w: field %d has no name", ErrInvalidSchema, i)
		}
		if seen[f.Name] {
			return Schema{}, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		seen[f.Name] = true
	}
	return s, nil
}

func parseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// build turns the schema into one validator over a whole document.
func (s Schema) build(remoteDelay time.Duration) (validator.Validator[Document], error) {
	fields := make([]validator.Field[Document], 0, len(s.Fields))
	for _, spec := range s.Fields {
		v, err := spec.build(remoteDelay)
		if err != nil {
			return nil, err
		}
		fields = append(fields, validator.Field[Document]{Name: spec.Name, Validator: v})
	}
	return validator.Compose(fields...), nil
}

func (f FieldSpec) build(remoteDelay time.Duration) (validator.Validator[Document], error) {
	rules := make([]validator.Validator[any], 0, len(f.Rules))
	for _, raw := range f.Rules {
		rule, err := parseRule(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rules = append(rules, rule)
	}

	v := validator.Chain(rules...)
	if f.Remote {
		v = validator.StartInconclusive(validator.Delay(remoteDelay, v))
	}

	name := f.Name
	return validator.Focus(func(doc Document) any { return doc[name] }, v), nil
}

func parseRule(raw string) (validator.Validator[any], error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(raw), ":")
	switch name {
	case "required":
		return validator.Required(), nil
	case "string":
		return validator.IsString(), nil
	case "number":
		return validator.IsNumber(), nil
	case "bool":
		return validator.IsBool(), nil
	case "object":
		return validator.IsMap(), nil
	case "array":
		return validator.IsSlice(), nil
	case "email":
		return validator.Email(), nil
	case "url":
		return validator.URL(), nil
	case "uuid":
		return validator.UUID(), nil
	case "pattern":
		re, err := regexp.Compile(arg)
		if !hasArg || err != nil {
			return nil, fmt.Errorf("%w: %q needs a valid regular expression", ErrUnknownRule, raw)
		}
		return validator.Pattern(re, arg), nil
	case "minlen", "maxlen":
		if !hasArg {
			return nil, fmt.Errorf("%w: %q needs a length", ErrUnknownRule, raw)
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q has an invalid length", ErrUnknownRule, raw)
		}
		if name == "minlen" {
			return validator.MinLen(n), nil
		}
		return validator.MaxLen(n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, raw)
	}
}

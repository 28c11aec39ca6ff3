// Package schema validates parsed JSON values against per-stage
// contracts before they are trusted downstream.
package schema

import (
	"fmt"
	"strings"
)

// Kind is the required top-level JSON kind of a value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
)

// Contract declares what a stage requires of a JSON value. For object
// contracts the field lists apply to the value itself; for array
// contracts they apply to every element, which must be an object.
type Contract struct {
	Kind     Kind
	Required []string // fields that must be present
	Numeric  []string // fields that must be JSON numbers
	Objects  []string // fields that must be JSON objects
	Arrays   []string // fields that must be JSON arrays
}

// ValidationError aggregates every violation found in one pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema: %d violation(s): %s", len(e.Violations), strings.Join(e.Violations, "; "))
}

// Validate checks value against the contract. It is pure: the same
// value and contract always yield the same verdict and violation set.
func Validate(value any, c Contract) error {
	var violations []string

	switch c.Kind {
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return &ValidationError{Violations: []string{"value is not an object"}}
		}
		violations = checkFields(obj, c, "")

	case KindArray:
		arr, ok := value.([]any)
		if !ok {
			return &ValidationError{Violations: []string{"value is not an array"}}
		}
		for i, element := range arr {
			obj, ok := element.(map[string]any)
			if !ok {
				violations = append(violations, fmt.Sprintf("record %d is not an object", i))
				continue
			}
			violations = append(violations, checkFields(obj, c, fmt.Sprintf("record %d ", i))...)
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func checkFields(obj map[string]any, c Contract, prefix string) []string {
	var violations []string

	for _, field := range c.Required {
		if _, present := obj[field]; !present {
			violations = append(violations, fmt.Sprintf("%smissing required field: %s", prefix, field))
		}
	}
	for _, field := range c.Numeric {
		v, present := obj[field]
		if !present {
			continue // absence already reported via Required
		}
		if _, ok := v.(float64); !ok {
			violations = append(violations, fmt.Sprintf("%sfield %s must be a number", prefix, field))
		}
	}
	for _, field := range c.Objects {
		v, present := obj[field]
		if !present {
			continue
		}
		if _, ok := v.(map[string]any); !ok {
			violations = append(violations, fmt.Sprintf("%sfield %s must be an object", prefix, field))
		}
	}
	for _, field := range c.Arrays {
		v, present := obj[field]
		if !present {
			continue
		}
		if _, ok := v.([]any); !ok {
			violations = append(violations, fmt.Sprintf("%sfield %s must be an array", prefix, field))
		}
	}

	return violations
}

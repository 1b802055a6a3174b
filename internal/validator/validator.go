// Package validator provides a Validator type for accumulating field-level
// validation failures in the order they were detected.
package validator

import (
	"strconv"
	"strings"
)

// Violation is a single failed check for one form field.
type Violation struct {
	Field   string // Form field name, e.g. "title"
	Message string // Human-readable message shown next to the field
}

// Validator holds the violations collected so far.
// A Validator with no violations is considered valid.
type Validator struct {
	Violations []Violation
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{}
}

// Valid returns true if no violations have been recorded.
func (v *Validator) Valid() bool {
	return len(v.Violations) == 0
}

// AddError records field as failing with the given message.
// If field already has a violation it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(field, message string) {
	if v.Has(field) {
		return
	}
	v.Violations = append(v.Violations, Violation{Field: field, Message: message})
}

// Check adds a violation for field with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(validator.NotBlank(title), "title", "Title is required")
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Has reports whether field already has a violation.
func (v *Validator) Has(field string) bool {
	for _, violation := range v.Violations {
		if violation.Field == field {
			return true
		}
	}
	return false
}

// FieldErrors indexes violations by field name for templates.
func FieldErrors(violations []Violation) map[string]string {
	out := make(map[string]string, len(violations))
	for _, violation := range violations {
		if _, exists := out[violation.Field]; !exists {
			out[violation.Field] = violation.Message
		}
	}
	return out
}

// NotBlank returns true if value contains at least one non-whitespace character.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsInt returns true if value, ignoring surrounding whitespace, parses as a
// base-10 integer.
func IsInt(value string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(value))
	return err == nil
}

// IsInt32 returns true if value, ignoring surrounding whitespace, parses as a
// base-10 integer that fits in 32 bits, the range of a PostgreSQL integer.
func IsInt32(value string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	return err == nil
}

package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the constraint messages it violated.
type ValidationErrors map[string][]string

// Add appends a message for a field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Has reports whether the field carries at least one error.
func (v ValidationErrors) Has(field string) bool {
	return len(v[field]) > 0
}

// OrNil returns nil when no errors were collected, so callers can write
// `if err := m.Validate(); err != nil`.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// requireLength collects presence and rune-length constraint violations.
func requireLength(errs ValidationErrors, field, value string, min, max int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "can't be blank")
		return
	}
	if n := len([]rune(value)); n < min {
		errs.Add(field, fmt.Sprintf("is too short (minimum is %d characters)", min))
	} else if n > max {
		errs.Add(field, fmt.Sprintf("is too long (maximum is %d characters)", max))
	}
}

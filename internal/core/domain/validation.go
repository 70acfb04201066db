package domain

import "strings"

// FieldViolation describes one rejected request field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError collects every field violation found in a request.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" - "+v.Message)
	}
	return "Invalid fields: " + strings.Join(parts, "; ")
}

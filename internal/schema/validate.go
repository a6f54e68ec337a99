package schema

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// FieldError is a value that does not fit its registry field.
type FieldError struct {
	Entity string
	Column string
	Code   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Column, e.Code)
}

// Validate checks text values against the declared fields of entity. Keys
// are column names; a nil value means the column is being set to NULL. With
// partial unset, required columns missing from values are reported too.
func (r *Registry) Validate(entity string, values map[string]*string, partial bool) error {
	e, ok := r.Entity(entity)
	if !ok {
		return fmt.Errorf("schema: unknown entity %q", entity)
	}

	for col := range values {
		if _, ok := e.Field(col); !ok {
			return &FieldError{Entity: entity, Column: col, Code: "unknown_field"}
		}
	}

	for _, f := range e.Fields {
		v, present := values[f.Column]
		if !present {
			if !partial && f.Required() {
				return &FieldError{Entity: entity, Column: f.Column, Code: "required"}
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				return &FieldError{Entity: entity, Column: f.Column, Code: "required"}
			}
			continue
		}
		if f.Required() && strings.TrimSpace(*v) == "" {
			return &FieldError{Entity: entity, Column: f.Column, Code: "required"}
		}
		if f.Size > 0 && utf8.RuneCountInString(*v) > f.Size {
			return &FieldError{Entity: entity, Column: f.Column, Code: "too_long"}
		}
		if len(f.Values) > 0 && !slices.Contains(f.Values, *v) {
			return &FieldError{Entity: entity, Column: f.Column, Code: "invalid_value"}
		}
	}
	return nil
}

package catalog

import (
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

// Check validates column values against the registry field declarations and
// reports the first violation as a validation error on that column.
func Check(r *schema.Registry, entity string, values map[string]*string, partial bool) error {
	err := r.Validate(entity, values, partial)
	if err == nil {
		return nil
	}
	var fe *schema.FieldError
	if errors.As(err, &fe) {
		return httperr.ErrValidation(fe.Column, fe.Code)
	}
	return err
}

// Trim returns a pointer to the trimmed value, nil stays nil.
func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

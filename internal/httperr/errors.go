package httperr

import (
	"errors"
	"fmt"
)

// Kind groups domain errors by how the caller should react to them.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindBusiness   Kind = "business"
)

// DomainError is an error the request boundary recovers from.
// Field names the offending input for validation errors, Entity names the
// missing record for not-found errors.
type DomainError struct {
	Kind   Kind
	Code   string
	Field  string
	Entity string
}

func (e *DomainError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Code)
	case e.Entity != "":
		return fmt.Sprintf("%s: %s", e.Entity, e.Code)
	}
	return e.Code
}

func ErrValidation(field, code string) error {
	return &DomainError{Kind: KindValidation, Code: code, Field: field}
}

func ErrNotFound(entity string) error {
	return &DomainError{Kind: KindNotFound, Code: "not_found", Entity: entity}
}

func ErrConflict(code string) error {
	return &DomainError{Kind: KindConflict, Code: code}
}

func ErrBusiness(code string) error {
	return &DomainError{Kind: KindBusiness, Code: code}
}

// As returns the DomainError wrapped in err, if any.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	de, ok := As(err)
	return ok && de.Kind == kind
}

func IsBusiness(err error, code string) bool {
	de, ok := As(err)
	return ok && de.Kind == KindBusiness && de.Code == code
}

func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

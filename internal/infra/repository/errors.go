package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
)

// classify turns storage errors into domain errors. entity names the row the
// statement targeted; conflict is the code reported for uniqueness failures.
func classify(err error, entity, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrNotFound(entity)
	case db.IsUniqueViolation(err):
		return httperr.ErrConflict(conflict)
	case db.IsForeignKeyViolation(err):
		return httperr.ErrNotFound("reference")
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// deleted reports a not-found error when a delete matched no row.
func deleted(res *gorm.DB, entity string) error {
	if res.Error != nil {
		return classify(res.Error, entity, entity+"_in_use")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(entity)
	}
	return nil
}

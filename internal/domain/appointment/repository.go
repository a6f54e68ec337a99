package appointment

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// Repository returns httperr not-found errors for missing rows and conflict
// errors for uniqueness violations.
type Repository interface {
	// -------- Appointment --------
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	Get(ctx context.Context, id uint) (*models.Appointment, error)
	Create(ctx context.Context, ap *models.Appointment) error
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error

	// -------- References --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetPerson(ctx context.Context, id uint) (*models.Person, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
}

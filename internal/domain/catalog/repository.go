package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// Repository returns httperr not-found errors for missing rows and conflict
// errors for uniqueness violations.
type Repository interface {
	// -------- Job --------
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id uint) error

	// -------- Person --------
	ListPersons(ctx context.Context) ([]models.Person, error)
	ListPersonsByIDs(ctx context.Context, ids []uint) ([]models.Person, error)
	GetPerson(ctx context.Context, id uint) (*models.Person, error)
	CreatePerson(ctx context.Context, p *models.Person) error
	UpdatePerson(ctx context.Context, p *models.Person) error
	DeletePerson(ctx context.Context, id uint) error

	// -------- Qualification --------
	QualifiedPersonIDs(ctx context.Context, jobID uint) ([]uint, error)
	JobIDsOfPerson(ctx context.Context, personID uint) ([]uint, error)
	ListJobsByIDs(ctx context.Context, ids []uint) ([]models.Job, error)
	Grant(ctx context.Context, personID, jobID uint) (*models.PersonJob, error)
	Revoke(ctx context.Context, personID, jobID uint) error

	// -------- Service --------
	ListServices(ctx context.Context, jobID *uint) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}

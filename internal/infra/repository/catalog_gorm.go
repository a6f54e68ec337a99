package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

type CatalogGormRepository struct {
	db       *gorm.DB
	registry *schema.Registry
}

func NewCatalogGormRepository(db *gorm.DB, registry *schema.Registry) *CatalogGormRepository {
	return &CatalogGormRepository{db: db, registry: registry}
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (r *CatalogGormRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, classify(err, "job", "job_name_taken")
	}
	return jobs, nil
}

func (r *CatalogGormRepository) ListJobsByIDs(ctx context.Context, ids []uint) ([]models.Job, error) {
	jobs := []models.Job{}
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&jobs).Error; err != nil {
		return nil, classify(err, "job", "job_name_taken")
	}
	return jobs, nil
}

func (r *CatalogGormRepository) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, classify(err, "job", "job_name_taken")
	}
	return &job, nil
}

func (r *CatalogGormRepository) CreateJob(ctx context.Context, job *models.Job) error {
	return classify(r.db.WithContext(ctx).Create(job).Error, "job", "job_name_taken")
}

func (r *CatalogGormRepository) UpdateJob(ctx context.Context, job *models.Job) error {
	return classify(r.db.WithContext(ctx).Save(job).Error, "job", "job_name_taken")
}

// DeleteJob relies on the store's foreign keys: services, appointments and
// persons keep their rows with job_id cleared, qualifications are removed.
func (r *CatalogGormRepository) DeleteJob(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Job{}, id), "job")
}

// --------------------------------------------------
// Person
// --------------------------------------------------

func (r *CatalogGormRepository) ListPersons(ctx context.Context) ([]models.Person, error) {
	var persons []models.Person
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&persons).Error; err != nil {
		return nil, classify(err, "person", "person_exists")
	}
	return persons, nil
}

func (r *CatalogGormRepository) ListPersonsByIDs(ctx context.Context, ids []uint) ([]models.Person, error) {
	persons := []models.Person{}
	if len(ids) == 0 {
		return persons, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&persons).Error; err != nil {
		return nil, classify(err, "person", "person_exists")
	}
	return persons, nil
}

func (r *CatalogGormRepository) GetPerson(ctx context.Context, id uint) (*models.Person, error) {
	var p models.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, classify(err, "person", "person_exists")
	}
	return &p, nil
}

func (r *CatalogGormRepository) CreatePerson(ctx context.Context, p *models.Person) error {
	return classify(r.db.WithContext(ctx).Create(p).Error, "person", "person_exists")
}

func (r *CatalogGormRepository) UpdatePerson(ctx context.Context, p *models.Person) error {
	return classify(r.db.WithContext(ctx).Save(p).Error, "person", "person_exists")
}

func (r *CatalogGormRepository) DeletePerson(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Person{}, id), "person")
}

// --------------------------------------------------
// Qualification
// --------------------------------------------------

// junction resolves the junction table and columns linking one to many.
func (r *CatalogGormRepository) junction(one, many string) (table, oneCol, manyCol string, err error) {
	rel, ok := r.registry.Junction(one, many)
	if !ok {
		return "", "", "", fmt.Errorf("no junction between %s and %s", one, many)
	}
	through, ok := r.registry.Entity(rel.Through)
	if !ok {
		return "", "", "", fmt.Errorf("unknown junction %s", rel.Through)
	}
	return through.Table, rel.Column, rel.ThroughColumn, nil
}

func (r *CatalogGormRepository) pluckIDs(ctx context.Context, one, many string, id uint) ([]uint, error) {
	table, oneCol, manyCol, err := r.junction(one, many)
	if err != nil {
		return nil, err
	}

	ids := []uint{}
	if err := r.db.WithContext(ctx).
		Table(table).
		Where(oneCol+" = ?", id).
		Order("id ASC").
		Pluck(manyCol, &ids).Error; err != nil {
		return nil, classify(err, "qualification", "already_qualified")
	}
	return ids, nil
}

func (r *CatalogGormRepository) QualifiedPersonIDs(ctx context.Context, jobID uint) ([]uint, error) {
	return r.pluckIDs(ctx, schema.EntityJob, schema.EntityPerson, jobID)
}

func (r *CatalogGormRepository) JobIDsOfPerson(ctx context.Context, personID uint) ([]uint, error) {
	return r.pluckIDs(ctx, schema.EntityPerson, schema.EntityJob, personID)
}

func (r *CatalogGormRepository) Grant(ctx context.Context, personID, jobID uint) (*models.PersonJob, error) {
	pj := &models.PersonJob{PersonID: personID, JobID: jobID}
	if err := r.db.WithContext(ctx).Create(pj).Error; err != nil {
		return nil, classify(err, "qualification", "already_qualified")
	}
	return pj, nil
}

func (r *CatalogGormRepository) Revoke(ctx context.Context, personID, jobID uint) error {
	res := r.db.WithContext(ctx).
		Where("persoana_id = ? AND job_id = ?", personID, jobID).
		Delete(&models.PersonJob{})
	if res.Error != nil {
		return classify(res.Error, "qualification", "already_qualified")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("qualification")
	}
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context, jobID *uint) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if jobID != nil {
		q = q.Where("job_id = ?", *jobID)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, classify(err, "service", "service_exists")
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, classify(err, "service", "service_exists")
	}
	return &svc, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return classify(r.db.WithContext(ctx).Create(s).Error, "service", "service_exists")
}

func (r *CatalogGormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	return classify(r.db.WithContext(ctx).Save(s).Error, "service", "service_exists")
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Service{}, id), "service")
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)

package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if f.From != "" {
		q = q.Where("data >= ?", f.From)
	}
	if f.PersonID != nil {
		q = q.Where("persoana_id = ?", *f.PersonID)
	}
	if f.JobID != nil {
		q = q.Where("job_id = ?", *f.JobID)
	}
	if f.SortByDate {
		q = q.Order("data ASC").Order("ora ASC").Order("id ASC")
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, classify(err, "appointment", "appointment_exists")
	}
	return apps, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, classify(err, "appointment", "appointment_exists")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return classify(r.db.WithContext(ctx).Create(ap).Error, "appointment", "appointment_exists")
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return classify(r.db.WithContext(ctx).Save(ap).Error, "appointment", "appointment_exists")
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Appointment{}, id), "appointment")
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, classify(err, "service", "service_exists")
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetPerson(
	ctx context.Context,
	id uint,
) (*models.Person, error) {

	var p models.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, classify(err, "person", "person_exists")
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetJob(
	ctx context.Context,
	id uint,
) (*models.Job, error) {

	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, classify(err, "job", "job_name_taken")
	}
	return &job, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

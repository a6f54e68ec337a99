package appointment

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	registry *schema.Registry
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	registry *schema.Registry,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		registry: registry,
		clock:    clock,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID *uint,
	in Fields,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Field validation, before any storage access
	// --------------------------------------------------
	if in.Date == nil {
		return nil, httperr.ErrValidation("date", "required")
	}
	if in.Time == nil {
		return nil, httperr.ErrValidation("time", "required")
	}

	p, err := in.validate(uc.clock.Today(), uc.registry)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. References
	// --------------------------------------------------
	if err := checkPerson(ctx, uc.repo, in.PersonID); err != nil {
		return nil, err
	}

	jobID, err := resolveJob(ctx, uc.repo, in.ServiceID, in.JobID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Insert
	// --------------------------------------------------
	status := domain.InitialStatus()
	if p.status != nil {
		status = *p.status
	}

	ap := &models.Appointment{
		Date:      *p.date,
		Time:      *p.time,
		Status:    string(status),
		PersonID:  in.PersonID,
		ServiceID: in.ServiceID,
		JobID:     jobID,
	}
	in.applyText(ap)

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

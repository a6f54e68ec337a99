package appointment

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

type UpdateAppointment struct {
	repo     domain.Repository
	registry *schema.Registry
	clock    timezone.Clock
	audit    *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	registry *schema.Registry,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		registry: registry,
		clock:    clock,
		audit:    audit,
	}
}

// Execute overwrites the supplied fields only. References that are not
// supplied keep their stored value; the job is re-derived whenever the
// appointment ends up with a service.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
	in Fields,
) (*models.Appointment, error) {

	p, err := in.validate(uc.clock.Today(), uc.registry)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// References
	// --------------------------------------------------
	if in.PersonID != nil {
		if err := checkPerson(ctx, uc.repo, in.PersonID); err != nil {
			return nil, err
		}
		ap.PersonID = in.PersonID
	}

	switch {
	case in.ServiceID != nil:
		jobID, err := resolveJob(ctx, uc.repo, in.ServiceID, nil)
		if err != nil {
			return nil, err
		}
		ap.ServiceID = in.ServiceID
		ap.JobID = jobID
	case in.JobID != nil:
		// An appointment bound to a service keeps that service's job.
		jobID, err := resolveJob(ctx, uc.repo, ap.ServiceID, in.JobID)
		if err != nil {
			return nil, err
		}
		ap.JobID = jobID
	}

	// --------------------------------------------------
	// Plain fields
	// --------------------------------------------------
	if p.date != nil {
		ap.Date = *p.date
	}
	if p.time != nil {
		ap.Time = *p.time
	}
	if p.status != nil {
		ap.Status = string(*p.status)
	}
	in.applyText(ap)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

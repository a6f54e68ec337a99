package appointment

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// Transition is one status action: confirm, cancel or complete.
type Transition struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	action string
	apply  func(*models.Appointment) error
}

func NewConfirmAppointment(repo domain.Repository, audit *audit.Dispatcher) *Transition {
	return &Transition{repo: repo, audit: audit, action: "appointment_confirmed", apply: domain.Confirm}
}

func NewCancelAppointment(repo domain.Repository, audit *audit.Dispatcher) *Transition {
	return &Transition{repo: repo, audit: audit, action: "appointment_cancelled", apply: domain.Cancel}
}

func NewCompleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *Transition {
	return &Transition{repo: repo, audit: audit, action: "appointment_completed", apply: domain.Complete}
}

func (uc *Transition) Execute(
	ctx context.Context,
	userID *uint,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   uc.action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

type ListInput struct {
	PersonID *uint
	JobID    *uint

	// IncludePast drops the date predicate (history view).
	IncludePast bool
	SortByDate  bool
}

type ListAppointments struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointments(
	repo domain.Repository,
	clock timezone.Clock,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]dto.AppointmentListDTO, error) {

	today := uc.clock.Today()

	f := domain.Visibility(today)
	if in.IncludePast {
		f.From = ""
	}
	f.PersonID = in.PersonID
	f.JobID = in.JobID
	f.SortByDate = in.SortByDate

	appointments, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments, today), nil
}

package appointment

import (
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func open(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

func Confirm(ap *models.Appointment) error {
	if Status(ap.Status) != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if !open(Status(ap.Status)) {
		return httperr.ErrBusiness("invalid_state")
	}
	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if !open(Status(ap.Status)) {
		return httperr.ErrBusiness("invalid_state")
	}
	ap.Status = string(StatusCompleted)
	return nil
}

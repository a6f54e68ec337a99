package appointment

import (
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus accepts the statuses declared for the status column.
func ParseStatus(s string) (Status, error) {
	for _, v := range schema.AppointmentStatuses {
		if s == v {
			return Status(s), nil
		}
	}
	return "", httperr.ErrValidation("status", "invalid_status")
}

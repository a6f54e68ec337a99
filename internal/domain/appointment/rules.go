package appointment

import (
	"time"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// ===============================
// Date / time parsing
// ===============================

func ParseDate(s string) (models.Date, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return "", httperr.ErrValidation("date", "invalid_date")
	}
	return models.Date(d.Format(models.DateLayout)), nil
}

// ParseTime accepts H:MM or HH:MM and normalizes to HH:MM.
func ParseTime(s string) (models.TimeOfDay, error) {
	t, err := time.Parse(models.TimeOfDayLayout, s)
	if err != nil {
		return "", httperr.ErrValidation("time", "invalid_time")
	}
	return models.TimeOfDay(t.Format(models.TimeOfDayLayout)), nil
}

// ===============================
// Rules
// ===============================

// CheckNotPast rejects dates strictly before today. Both are YYYY-MM-DD,
// so string order is date order.
func CheckNotPast(d models.Date, today string) error {
	if string(d) < today {
		return httperr.ErrValidation("date", "date_in_past")
	}
	return nil
}

// Visible is the default listing predicate. Past appointments stay stored
// and reachable by id.
func Visible(ap models.Appointment, today string) bool {
	return string(ap.Date) >= today
}

// DeriveJob is the job an appointment for svc must carry.
func DeriveJob(svc *models.Service) *uint {
	if svc == nil || svc.JobID == nil {
		return nil
	}
	id := *svc.JobID
	return &id
}

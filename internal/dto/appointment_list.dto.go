package dto

import (
	"strings"

	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	ClientName string `json:"client_name"`
	PersonID   *uint  `json:"person_id"`
	ServiceID  *uint  `json:"service_id"`
	JobID      *uint  `json:"job_id"`
	Past       bool   `json:"past"`
}

// NewAppointmentList flags appointments dated before today as past.
func NewAppointmentList(apps []models.Appointment, today string) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date.String(),
			Time:       ap.Time.String(),
			Status:     ap.Status,
			ClientName: clientName(ap),
			PersonID:   ap.PersonID,
			ServiceID:  ap.ServiceID,
			JobID:      ap.JobID,
			Past:       ap.Date.String() < today,
		})
	}
	return out
}

func clientName(ap models.Appointment) string {
	var parts []string
	for _, p := range []*string{ap.ClientFirstName, ap.ClientLastName} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}

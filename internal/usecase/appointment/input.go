package appointment

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/validators"
)

const maxNotes = 1000

// ======================================================
// INPUT
// ======================================================

// Fields is the writable field set of an appointment. A nil pointer means
// "not supplied": create fills defaults, update leaves the stored value.
type Fields struct {
	Date *string
	Time *string

	PersonID  *uint
	ServiceID *uint
	JobID     *uint

	ClientLastName  *string
	ClientFirstName *string
	ClientEmail     *string
	ClientPhone     *string
	Notes           *string
	Status          *string
}

// parsed holds the validated values of Fields.
type parsed struct {
	date   *models.Date
	time   *models.TimeOfDay
	status *domain.Status
}

// columns maps the text fields to their registry columns.
func (f Fields) columns() map[string]*string {
	out := make(map[string]*string)
	for col, v := range map[string]*string{
		"nume_client":    f.ClientLastName,
		"prenume_client": f.ClientFirstName,
		"email_client":   f.ClientEmail,
		"telefon_client": f.ClientPhone,
		"observatii":     f.Notes,
	} {
		if v != nil {
			out[col] = v
		}
	}
	return out
}

var fieldNames = map[string]string{
	"nume_client":    "client_last_name",
	"prenume_client": "client_first_name",
	"email_client":   "client_email",
	"telefon_client": "client_phone",
	"observatii":     "notes",
}

// validate runs every field rule before any storage access.
func (f Fields) validate(today string, registry *schema.Registry) (parsed, error) {
	var p parsed

	if f.Date != nil {
		d, err := domain.ParseDate(strings.TrimSpace(*f.Date))
		if err != nil {
			return p, err
		}
		if err := domain.CheckNotPast(d, today); err != nil {
			return p, err
		}
		p.date = &d
	}

	if f.Time != nil {
		t, err := domain.ParseTime(strings.TrimSpace(*f.Time))
		if err != nil {
			return p, err
		}
		p.time = &t
	}

	refs := []struct {
		field string
		id    *uint
	}{{"person_id", f.PersonID}, {"service_id", f.ServiceID}, {"job_id", f.JobID}}
	for _, ref := range refs {
		if ref.id != nil && *ref.id == 0 {
			return p, httperr.ErrValidation(ref.field, "invalid_reference")
		}
	}

	names := []struct {
		field string
		value *string
	}{{"client_last_name", f.ClientLastName}, {"client_first_name", f.ClientFirstName}}
	for _, n := range names {
		if n.value != nil && !validators.LengthBetween(*n.value, 2, 100) {
			return p, httperr.ErrValidation(n.field, "invalid_length")
		}
	}
	if f.ClientEmail != nil && !validators.IsEmail(*f.ClientEmail) {
		return p, httperr.ErrValidation("client_email", "invalid_email")
	}
	if f.ClientPhone != nil && !validators.IsPhone(*f.ClientPhone) {
		return p, httperr.ErrValidation("client_phone", "invalid_phone")
	}
	if f.Notes != nil && !validators.LengthBetween(*f.Notes, 0, maxNotes) {
		return p, httperr.ErrValidation("notes", "too_long")
	}

	if err := registry.Validate(schema.EntityAppointment, f.columns(), true); err != nil {
		var fe *schema.FieldError
		if errors.As(err, &fe) {
			return p, httperr.ErrValidation(fieldNames[fe.Column], fe.Code)
		}
		return p, err
	}

	if f.Status != nil {
		s, err := domain.ParseStatus(*f.Status)
		if err != nil {
			return p, err
		}
		p.status = &s
	}

	return p, nil
}

func (f Fields) applyText(ap *models.Appointment) {
	if f.ClientLastName != nil {
		ap.ClientLastName = f.ClientLastName
	}
	if f.ClientFirstName != nil {
		ap.ClientFirstName = f.ClientFirstName
	}
	if f.ClientEmail != nil {
		ap.ClientEmail = f.ClientEmail
	}
	if f.ClientPhone != nil {
		ap.ClientPhone = f.ClientPhone
	}
	if f.Notes != nil {
		ap.Notes = f.Notes
	}
}

// ======================================================
// REFERENCES
// ======================================================

// resolveJob returns the job the appointment must carry. A service always
// wins over an explicit job.
func resolveJob(ctx context.Context, repo domain.Repository, serviceID, jobID *uint) (*uint, error) {
	if serviceID != nil {
		svc, err := repo.GetService(ctx, *serviceID)
		if err != nil {
			return nil, err
		}
		return domain.DeriveJob(svc), nil
	}
	if jobID != nil {
		if _, err := repo.GetJob(ctx, *jobID); err != nil {
			return nil, err
		}
		id := *jobID
		return &id, nil
	}
	return nil, nil
}

func checkPerson(ctx context.Context, repo domain.Repository, personID *uint) error {
	if personID == nil {
		return nil
	}
	_, err := repo.GetPerson(ctx, *personID)
	return err
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/service-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/service-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list     *ucAppointment.ListAppointments
	get      *ucAppointment.GetAppointment
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	delete   *ucAppointment.DeleteAppointment
	confirm  *ucAppointment.Transition
	cancel   *ucAppointment.Transition
	complete *ucAppointment.Transition
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	confirm *ucAppointment.Transition,
	cancel *ucAppointment.Transition,
	complete *ucAppointment.Transition,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:     list,
		get:      get,
		create:   create,
		update:   update,
		delete:   del,
		confirm:  confirm,
		cancel:   cancel,
		complete: complete,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`

	PersonID  *uint `json:"person_id"`
	ServiceID *uint `json:"service_id"`
	JobID     *uint `json:"job_id"`

	ClientLastName  *string `json:"client_last_name"`
	ClientFirstName *string `json:"client_first_name"`
	ClientEmail     *string `json:"client_email"`
	ClientPhone     *string `json:"client_phone"`
	Notes           *string `json:"notes"`
	Status          *string `json:"status"`
}

func (r AppointmentRequest) fields() ucAppointment.Fields {
	return ucAppointment.Fields{
		Date:            r.Date,
		Time:            r.Time,
		PersonID:        r.PersonID,
		ServiceID:       r.ServiceID,
		JobID:           r.JobID,
		ClientLastName:  r.ClientLastName,
		ClientFirstName: r.ClientFirstName,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Notes:           r.Notes,
		Status:          r.Status,
	}
}

// ======================================================
// LIST / GET
// ======================================================

// List serves GET /api/appointments?person_id=&job_id=&include_past=&sort=date
func (h *AppointmentHandler) List(c *gin.Context) {
	personID, ok := queryID(c, "person_id")
	if !ok {
		return
	}
	jobID, ok := queryID(c, "job_id")
	if !ok {
		return
	}

	sort := c.Query("sort")
	if sort != "" && sort != "date" {
		httperr.BadRequest(c, "invalid_sort", "sort must be date")
		return
	}

	list, err := h.list.Execute(c.Request.Context(), ucAppointment.ListInput{
		PersonID:    personID,
		JobID:       jobID,
		IncludePast: c.Query("include_past") == "true",
		SortByDate:  sort == "date",
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.fields())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), id, req.fields())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context)  { h.transition(c, h.confirm) }
func (h *AppointmentHandler) Cancel(c *gin.Context)   { h.transition(c, h.cancel) }
func (h *AppointmentHandler) Complete(c *gin.Context) { h.transition(c, h.complete) }

func (h *AppointmentHandler) transition(c *gin.Context, uc *ucAppointment.Transition) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

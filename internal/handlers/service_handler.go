package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/service-scheduler/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *ucCatalog.Services
}

func NewServiceHandler(services *ucCatalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// ServiceRequest tells an absent job_id apart from "job_id": null, which
// clears the job.
type ServiceRequest struct {
	Description *string         `json:"description"`
	JobID       json.RawMessage `json:"job_id"`
}

func (r ServiceRequest) input() (ucCatalog.ServiceInput, bool) {
	in := ucCatalog.ServiceInput{Description: r.Description}
	if len(r.JobID) == 0 {
		return in, true
	}
	if bytes.Equal(r.JobID, []byte("null")) {
		in.ClearJob = true
		return in, true
	}

	var id uint
	if err := json.Unmarshal(r.JobID, &id); err != nil {
		return in, false
	}
	in.JobID = &id
	return in, true
}

func (h *ServiceHandler) bind(c *gin.Context) (ucCatalog.ServiceInput, bool) {
	var req ServiceRequest
	if !bindJSON(c, &req) {
		return ucCatalog.ServiceInput{}, false
	}
	in, ok := req.input()
	if !ok {
		httperr.BadRequest(c, "invalid_job_id", "job_id must be an integer or null")
	}
	return in, ok
}

// List serves GET /api/services?job_id=
func (h *ServiceHandler) List(c *gin.Context) {
	jobID, ok := queryID(c, "job_id")
	if !ok {
		return
	}

	services, err := h.services.List(c.Request.Context(), jobID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	s, err := h.services.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}

	s, err := h.services.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

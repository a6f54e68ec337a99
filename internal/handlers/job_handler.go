package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/service-scheduler/internal/usecase/catalog"
)

type JobHandler struct {
	jobs    *ucCatalog.Jobs
	persons *ucCatalog.Persons
}

func NewJobHandler(jobs *ucCatalog.Jobs, persons *ucCatalog.Persons) *JobHandler {
	return &JobHandler{jobs: jobs, persons: persons}
}

type JobRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, job)
}

// Persons lists the persons qualified for the job.
func (h *JobHandler) Persons(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	persons, err := h.persons.Qualified(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, persons)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobs.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
